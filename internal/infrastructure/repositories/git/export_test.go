package git

// ParseStatusPorcelainV2 exports parseStatusPorcelainV2 for testing.
var ParseStatusPorcelainV2 = parseStatusPorcelainV2 //nolint:gochecknoglobals // test export

// ParseVersionOutput exports parseVersionOutput for testing.
var ParseVersionOutput = parseVersionOutput //nolint:gochecknoglobals // test export
