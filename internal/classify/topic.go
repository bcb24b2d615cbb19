package classify

import "strings"

// Topic is one of the fixed problem categories.
type Topic string

const (
	ArraysHashing     Topic = "Arrays & Hashing"
	TwoPointers       Topic = "Two Pointers"
	SlidingWindow     Topic = "Sliding Window"
	Stack             Topic = "Stack"
	BinarySearch      Topic = "Binary Search"
	LinkedList        Topic = "Linked List"
	Trees             Topic = "Trees"
	HeapPriorityQueue Topic = "Heap / Priority Queue"
	Backtracking      Topic = "Backtracking"
	Tries             Topic = "Tries"
	Graphs            Topic = "Graphs"
	AdvancedGraphs    Topic = "Advanced Graphs"
	DP1D              Topic = "1-D Dynamic Programming"
	DP2D              Topic = "2-D Dynamic Programming"
	Greedy            Topic = "Greedy"
	Intervals         Topic = "Intervals"
	MathGeometry      Topic = "Math & Geometry"
	BitManipulation   Topic = "Bit Manipulation"
	Other             Topic = "Other"
)

var topicOrder = []Topic{
	ArraysHashing,
	TwoPointers,
	SlidingWindow,
	Stack,
	BinarySearch,
	LinkedList,
	Trees,
	HeapPriorityQueue,
	Backtracking,
	Tries,
	Graphs,
	AdvancedGraphs,
	DP1D,
	DP2D,
	Greedy,
	Intervals,
	MathGeometry,
	BitManipulation,
	Other,
}

var topicIndex = func() map[Topic]int {
	m := make(map[Topic]int, len(topicOrder))
	for i, t := range topicOrder {
		m[t] = i
	}
	return m
}()

// Topics returns the display order of all topics, Other last.
func Topics() []Topic {
	return append([]Topic(nil), topicOrder...)
}

// Index returns the topic's position in the display order.
// Unknown topics sort with Other.
func (t Topic) Index() int {
	if i, ok := topicIndex[t]; ok {
		return i
	}
	return topicIndex[Other]
}

func (t Topic) String() string {
	return string(t)
}

// ParseTopic resolves a topic name, ignoring case and surrounding space.
func ParseTopic(s string) (Topic, bool) {
	s = strings.TrimSpace(s)
	for _, t := range topicOrder {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}
