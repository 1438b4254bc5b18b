package dashboard

import "github.com/julianstephens/campusbuddy/internal/models"

// Sample inputs used by the "load sample" actions.
const (
	SampleNotesSubject = "Data Structures"

	SampleQuestionsSubject    = "Operating Systems"
	SampleQuestionsTopic      = "Process Synchronization"
	SampleQuestionsDifficulty = "Medium"

	SamplePracticalTitle   = "Implementation of Stack using Array"
	SamplePracticalContext = "Data Structures Lab, CSE"
)

const SampleNotes = `# Arrays and Linked Lists

## Arrays
Arrays are contiguous memory locations used to store similar data types. They offer O(1) access time for random access.

Key characteristics:
- Fixed size (in most languages)
- Elements stored in contiguous memory
- Direct access using index
- Cache-friendly due to locality

## Linked Lists
A linked list is a linear data structure where elements are stored in nodes, with each node pointing to the next.

Types:
- Singly Linked List: Each node points to next
- Doubly Linked List: Nodes point to both next and previous
- Circular Linked List: Last node points to first

Operations:
- Insertion: O(1) at head, O(n) at tail (for singly linked)
- Deletion: O(1) if node reference available
- Search: O(n) always

Comparison:
Arrays are better for random access, linked lists for frequent insertions/deletions.`

var sampleTopics = []string{
	"Arrays and Strings",
	"Linked Lists",
	"Stacks and Queues",
	"Trees and Binary Trees",
	"Graphs",
	"Sorting Algorithms",
	"Searching Algorithms",
	"Dynamic Programming",
	"Greedy Algorithms",
	"Hashing",
}

// SampleTopics returns a copy of the sample revision topics.
func SampleTopics() []string {
	return append([]string(nil), sampleTopics...)
}

func sampleSubjects() []models.CGPASubject {
	return []models.CGPASubject{
		{ID: "1", Name: "Data Structures", Credits: 4, Grade: "A+"},
		{ID: "2", Name: "Operating Systems", Credits: 3, Grade: "A"},
		{ID: "3", Name: "Database Management", Credits: 3, Grade: "O"},
		{ID: "4", Name: "Computer Networks", Credits: 3, Grade: "B+"},
		{ID: "5", Name: "Software Engineering", Credits: 3, Grade: "A"},
	}
}

func sampleAttendance() []models.AttendanceSubject {
	return []models.AttendanceSubject{
		{ID: "1", Subject: "Data Structures", Attendance: 85},
		{ID: "2", Subject: "Operating Systems", Attendance: 72},
		{ID: "3", Subject: "Database Management", Attendance: 90},
		{ID: "4", Subject: "Computer Networks", Attendance: 68},
		{ID: "5", Subject: "Software Engineering", Attendance: 78},
	}
}
