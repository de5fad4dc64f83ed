package cli

var (
	ScanNameFromPath = scanNameFromPath
	ParseOrgIDs      = parseOrgIDs
	ListenAndServe   = listenAndServe
)
