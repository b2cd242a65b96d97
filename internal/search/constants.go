package search

// minFuzzyLength is the shortest query that may match with typos
const minFuzzyLength = 3
