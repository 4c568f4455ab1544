package shipmentdto

// RefreshResult reports one tracking refresh. Changed is false when the
// carrier status matched the stored status and no write happened.
type RefreshResult struct {
	ShipmentID string
	Status     string
	Changed    bool
	Err        string
}

type BulkRefreshResult struct {
	Total   int
	Updated int
	Skipped int
	Failed  int
	Results []RefreshResult
}
