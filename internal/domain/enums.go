package domain

// Strategy identifies the algorithm used to turn raw text into a parsed mapping.
type Strategy string

const (
	// StrategyStandard parses the whole document in one buffer.
	StrategyStandard Strategy = "standard"
	// StrategyLazy indexes the document and parses only requested sections.
	StrategyLazy Strategy = "lazy"
	// StrategyStreaming scans line by line, finalizing sections as their
	// boundaries are detected.
	StrategyStreaming Strategy = "streaming"
)

// SectionWildcard requests every section from the lazy parser, which then
// defers to the memory-negotiated chunked full parse.
const SectionWildcard = "*"
