package generators

import (
	"fmt"
	"strings"

	"github.com/julianstephens/campusbuddy/internal/models"
)

var apparatus = []string{
	"Computer system with required software",
	"Laboratory equipment as per experiment",
	"Measurement instruments",
	"Safety equipment",
	"Documentation materials",
}

var procedure = []string{
	"Set up the required apparatus and equipment as per the experiment guidelines.",
	"Ensure all safety protocols are followed before starting the experiment.",
	"Initialize the system and verify all connections.",
	"Take initial readings and document the baseline parameters.",
	"Perform the main experiment following the standard methodology.",
	"Record all observations systematically in the observation table.",
	"Repeat the experiment for multiple trials to ensure accuracy.",
	"Analyze the collected data and calculate required values.",
	"Compare results with theoretical values and note any deviations.",
	"Draw conclusions based on the experimental findings.",
}

const observationTable = `| S.No | Parameter 1 | Parameter 2 | Calculated Value | Theoretical Value |
|------|-------------|-------------|------------------|-------------------|
| 1 | - | - | - | - |
| 2 | - | - | - | - |
| 3 | - | - | - | - |
| 4 | - | - | - | - |
| 5 | - | - | - | - |`

// PracticalFile fills the lab-record template for an experiment. context is optional.
func PracticalFile(title, context string) models.PracticalFile {
	aim := fmt.Sprintf("To study and implement %s and understand its working principles", title)
	if context != "" {
		aim += " in the context of " + context
	}
	aim += "."

	return models.PracticalFile{
		Aim:       aim,
		Apparatus: append([]string(nil), apparatus...),
		Theory: fmt.Sprintf("%[1]s is a fundamental concept in engineering that involves understanding the underlying principles and their practical applications. "+
			"This experiment aims to provide hands-on experience with %[1]s, helping students bridge the gap between theoretical knowledge and practical implementation.\n\n"+
			"The theoretical foundation includes understanding the core concepts, mathematical formulations, and the relationship between various parameters involved in %[1]s.", title),
		Procedure:   append([]string(nil), procedure...),
		Observation: observationTable,
		Result: fmt.Sprintf("The experiment on %s was successfully conducted. "+
			"The observations and calculations demonstrate the practical application of theoretical concepts. "+
			"The experimental results are in accordance with the expected theoretical values, with acceptable deviation within experimental error limits.", title),
		VivaQuestions: []string{
			fmt.Sprintf("What is the principle behind %s?", title),
			"Explain the significance of each component used in this experiment.",
			"What precautions should be taken during this experiment?",
			"How would you improve the accuracy of this experiment?",
			fmt.Sprintf("What are the real-world applications of %s?", title),
			"Explain the mathematical formulation used in this experiment.",
			"What are the sources of error in this experiment?",
			"How does temperature affect the results of this experiment?",
			"Compare this method with alternative approaches.",
			"What are the safety considerations for this experiment?",
		},
	}
}

// FormatPracticalFile renders the downloadable practical-file document.
func FormatPracticalFile(title, context string, pf models.PracticalFile) string {
	contextLine := ""
	if context != "" {
		contextLine = "CONTEXT: " + context
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PRACTICAL FILE\n%s\n\nEXPERIMENT: %s\n%s\n\n%s\n\n", rule(), title, contextLine, rule())
	fmt.Fprintf(&b, "AIM:\n%s\n\n", pf.Aim)
	fmt.Fprintf(&b, "APPARATUS REQUIRED:\n%s\n\n", numbered(pf.Apparatus, "%d. %s"))
	fmt.Fprintf(&b, "THEORY:\n%s\n\n", pf.Theory)
	fmt.Fprintf(&b, "PROCEDURE:\n%s\n\n", numbered(pf.Procedure, "Step %d: %s"))
	fmt.Fprintf(&b, "OBSERVATION TABLE:\n%s\n\n", pf.Observation)
	fmt.Fprintf(&b, "RESULT:\n%s\n\n", pf.Result)
	fmt.Fprintf(&b, "VIVA QUESTIONS:\n%s\n", numbered(pf.VivaQuestions, "%d. %s"))
	return b.String()
}

func numbered(items []string, format string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprintf(format, i+1, item)
	}
	return strings.Join(out, "\n")
}
