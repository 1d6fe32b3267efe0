package domain

type ReportName string

const (
	ReportPopularDestinations  ReportName = "popular-destinations"
	ReportCancellationsRefunds ReportName = "cancellations-refunds"
	ReportHighestActivity      ReportName = "highest-activity"
	ReportCustomerSpending     ReportName = "customer-spending"
	ReportDiscountImpact       ReportName = "discount-impact"
)

// ReportNames lists every report in the order the API documents them.
var ReportNames = []ReportName{
	ReportPopularDestinations,
	ReportCancellationsRefunds,
	ReportHighestActivity,
	ReportCustomerSpending,
	ReportDiscountImpact,
}

func ParseReportName(s string) (ReportName, error) {
	for _, n := range ReportNames {
		if string(n) == s {
			return n, nil
		}
	}
	return "", Validationf("unknown report %q", s)
}

// Report is the fixed envelope every analytical query returns.
type Report struct {
	Name    ReportName `json:"report"`
	Message string     `json:"message"`
	Rows    any        `json:"data"`
}

type DestinationPopularity struct {
	City          string  `json:"city"`
	TotalBookings int64   `json:"totalBookings"`
	AvgRating     float64 `json:"avgRating"`
}

type CancellationSummary struct {
	TotalCancellations  int64 `json:"totalCancellations"`
	TotalRefundRequests int64 `json:"totalRefundRequests"`
}

type MonthlyActivity struct {
	Month         int   `json:"month"`
	TotalActivity int64 `json:"totalActivity"`
}

type CustomerSpending struct {
	TravelerID        string `json:"travelerID"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	TotalPaidBookings int64  `json:"totalPaidBookings"`
}

type PackageClass string

const (
	PackageClassDiscounted    PackageClass = "Discounted"
	PackageClassNonDiscounted PackageClass = "Non-Discounted"
)

type DiscountImpact struct {
	PackageType       PackageClass `json:"packageType"`
	TotalReservations int64        `json:"totalReservations"`
}
