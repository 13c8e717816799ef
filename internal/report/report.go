package report

// Totals are the four raw sums everything else on the dashboard is
// derived from.
type Totals struct {
	ClientBilled  int64 // Σ entry totals for client parties
	ClientPaid    int64 // Σ payments received from clients
	WorkerPaid    int64 // Σ payments made to workers
	MaterialSpend int64 // Σ material purchase amounts
}

// Summary is the dashboard view of the books.
//
// Profit is cash basis: money received minus money paid out. Sales that
// have been billed but not yet paid do not count toward it.
type Summary struct {
	TotalSale            int64
	TotalPaymentReceived int64
	DueAmount            int64
	TotalWorkerPayment   int64
	TotalMaterialPayment int64
	TotalExpenditure     int64
	TotalProfit          int64
}
