package gitstate

// ParseStatus exports parseStatus for testing.
var ParseStatus = parseStatus //nolint:gochecknoglobals // test export

// SplitMessage exports splitMessage for testing.
var SplitMessage = splitMessage //nolint:gochecknoglobals // test export

// PathFromDiffHeader exports pathFromDiffHeader for testing.
var PathFromDiffHeader = pathFromDiffHeader //nolint:gochecknoglobals // test export
