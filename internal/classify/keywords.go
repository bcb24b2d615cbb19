package classify

// builtinKeywords lists, per topic and in topic order, the title phrases that
// identify it. Entries are kept verbatim, overlaps included.
var builtinKeywords = []topicKeywords{
	{ArraysHashing, []string{
		"two sum",
		"contains duplicate",
		"valid anagram",
		"group anagrams",
		"top k frequent",
		"product of array",
		"encode decode",
		"longest consecutive",
		"valid sudoku",
		"encode and decode",
		"longest common prefix",
		"top k frequent words",
		"majority element",
		"ransom note",
		"contiguous array",
		"subarray sum equals k",
		"first missing positive",
		"longest palindrome",
		"sort colors",
		"find all anagrams in a string",
		"palindrome pairs",
		"largest number",
		"insert delete getrandom",
		"design hit counter",
	}},
	{TwoPointers, []string{
		"two sum ii",
		"3sum",
		"container with most water",
		"trapping rain water",
		"valid palindrome",
		"palindrome",
		"squares of a sorted array",
		"3sum closest",
		"move zeroes",
		"backspace string compare",
		"rotate array",
	}},
	{SlidingWindow, []string{
		"longest substring",
		"minimum window",
		"sliding window",
		"longest repeating character",
		"permutation in string",
		"find all anagrams",
		"best time to buy and sell stock",
		"find k closest elements",
		"smallest range covering elements from k lists",
	}},
	{Stack, []string{
		"valid parentheses",
		"min stack",
		"evaluate reverse polish",
		"daily temperatures",
		"largest rectangle",
		"car fleet",
		"decode string",
		"basic calculator",
		"basic calculator ii",
		"longest valid parentheses",
		"implement queue using stacks",
		"asteroid collision",
		"maximum frequency stack",
	}},
	{BinarySearch, []string{
		"binary search",
		"search in rotated sorted array",
		"find minimum in rotated sorted array",
		"search a 2d matrix",
		"koko eating bananas",
		"find k closest",
		"time based key",
		"median of two sorted arrays",
		"first bad version",
		"random pick with weight",
	}},
	{LinkedList, []string{
		"reverse linked list",
		"merge two sorted lists",
		"linked list cycle",
		"remove nth node",
		"add two numbers",
		"copy list with random",
		"merge k sorted",
		"reverse nodes in k-group",
		"rotate list",
		"swap nodes in pairs",
		"reorder list",
		"remove duplicates",
		"partition list",
		"sort list",
		"odd even linked list",
		"palindrome linked list",
		"middle of the linked list",
		"lru cache",
		"find the duplicate number",
	}},
	{Trees, []string{
		"maximum depth",
		"same tree",
		"invert binary tree",
		"balanced binary tree",
		"diameter of binary tree",
		"subtree of another tree",
		"lowest common ancestor",
		"binary tree level order",
		"binary tree right side",
		"count good nodes",
		"validate binary search tree",
		"kth smallest element",
		"construct binary tree",
		"path sum",
		"binary tree maximum path",
		"serialize deserialize",
		"serialize and deserialize binary tree",
		"maximum width",
		"all nodes distance k",
		"convert sorted array to binary search tree",
		"path sum ii",
		"lowest common ancestor of a binary tree",
		"path sum iii",
		"maximum width of binary tree",
		"all nodes distance k in binary tree",
		"symmetric tree",
		"binary tree zigzag level order traversal",
		"inorder successor in bst",
	}},
	{HeapPriorityQueue, []string{
		"kth largest",
		"last stone weight",
		"k closest points",
		"task scheduler",
		"design twitter",
		"find median",
		"merge k sorted",
		"top k frequent",
		"maximum frequency stack",
	}},
	{Backtracking, []string{
		"combination sum",
		"permutations",
		"subsets",
		"word search",
		"n-queens",
		"palindrome partitioning",
		"letter combinations",
		"generate parentheses",
		"sudoku solver",
	}},
	{Tries, []string{
		"implement trie",
		"design add and search words",
		"word search ii",
		"design in-memory file system",
	}},
	{Graphs, []string{
		"clone graph",
		"number of islands",
		"rotting oranges",
		"max area of island",
		"pacific atlantic",
		"surrounded regions",
		"course schedule",
		"graph valid tree",
		"number of connected components",
		"redundant connection",
		"accounts merge",
		"walls and gates",
		"word ladder",
		"shortest path to get food",
		"minimum height trees",
		"flood fill",
		"minimum knight moves",
		"01 matrix",
	}},
	{AdvancedGraphs, []string{
		"network delay time",
		"reconstruct itinerary",
		"min cost to connect",
		"swim in rising water",
		"cheapest flights within k stops",
		"alien dictionary",
		"bus routes",
	}},
	{DP1D, []string{
		"climbing stairs",
		"min cost climbing stairs",
		"house robber",
		"house robber ii",
		"longest palindromic substring",
		"palindromic substrings",
		"decode ways",
		"coin change",
		"maximum product subarray",
		"word break",
		"longest increasing subsequence",
		"partition equal subset sum",
		"combination sum iv",
		"maximum profit in job scheduling",
	}},
	{DP2D, []string{
		"unique paths",
		"longest common subsequence",
		"edit distance",
		"interleaving string",
		"distinct subsequences",
		"regular expression matching",
		"maximal square",
		"best time to buy and sell stock with cooldown",
		"target sum",
		"coin change ii",
		"burst balloons",
		"longest increasing path in a matrix",
	}},
	{Greedy, []string{
		"maximum subarray",
		"jump game",
		"jump game ii",
		"gas station",
		"partition labels",
		"hand of straights",
		"merge triplets to form target triplet",
		"valid parenthesis string",
		"next permutation",
	}},
	{Intervals, []string{
		"merge intervals",
		"insert interval",
		"non-overlapping intervals",
		"meeting rooms",
		"meeting rooms ii",
		"employee free time",
		"minimum interval to include each query",
	}},
	{MathGeometry, []string{
		"rotate image",
		"spiral matrix",
		"set matrix zeroes",
		"happy number",
		"plus one",
		"pow(x, n)",
		"multiply strings",
		"detect squares",
		"random pick with weight",
		"squares of a sorted array",
		"palindrome number",
		"roman to integer",
		"add binary",
		"string to integer",
	}},
	{BitManipulation, []string{
		"single number",
		"number of 1 bits",
		"counting bits",
		"reverse bits",
		"missing number",
		"sum of two integers",
		"reverse integer",
	}},
}
