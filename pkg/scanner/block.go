package scanner

// CollectBody gathers the nested block governed by a header line at
// the given baseline indent: the maximal contiguous run of lines
// starting at start whose indent is strictly greater. It returns the
// body (possibly empty) and the index of the first line not consumed.
//
// Blocks are resolved lazily: this runs afresh each time a
// block-introducing statement is encountered syntactically, but the
// returned body is reused across loop iterations.
func CollectBody(lines []Line, start, baseline int) (body []Line, next int) {
	i := start
	for i < len(lines) && lines[i].Indent > baseline {
		i++
	}

	return lines[start:i], i
}
