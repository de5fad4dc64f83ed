package usecase

// Export unexported functions for testing
var (
	BuildDocumentsForTest              = buildDocuments
	PollForTest                        = poll
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
)
