package otp

// StationArrival is one row of the quarterly on-time-performance dataset:
// the detraining figures for a single train at a single arrival station
// over one fiscal quarter.
type StationArrival struct {
	FiscalYear    int `csv:"Fiscal Year" json:"FiscalYear" bson:"fiscalyear"`
	FiscalQuarter int `csv:"Fiscal Quarter" json:"FiscalQuarter" bson:"fiscalquarter"`

	ServiceLine string `csv:"Service Line" json:"ServiceLine" bson:"serviceline"`
	Service     string `csv:"Service" json:"Service" bson:"service"`
	SubService  string `csv:"Sub Service" json:"SubService" bson:"subservice"`

	TrainNumber int `csv:"Train Number" json:"TrainNumber" bson:"trainnumber"`

	ArrivalStationCode string `csv:"Arrival Station Code" json:"ArrivalStationCode" bson:"arrivalstationcode"`
	StationName        string `csv:"Station Name" json:"StationName" bson:"stationname"`
	City               string `csv:"City" json:"City" bson:"city"`
	State              string `csv:"State" json:"State" bson:"state"`

	Latitude  float64 `csv:"Latitude" json:"Latitude" bson:"latitude"`
	Longitude float64 `csv:"Longitude" json:"Longitude" bson:"longitude"`

	TotalDetrainingCustomers float64 `csv:"Total Detraining Customers" json:"TotalDetrainingCustomers" bson:"totaldetrainingcustomers"`
	LateDetrainingCustomers  float64 `csv:"Late Detraining Customers" json:"LateDetrainingCustomers" bson:"latedetrainingcustomers"`

	// AvgMinLate is the average minutes late over the late detraining
	// customers. NaN when the quarter had no late detraining customers.
	AvgMinLate float64 `csv:"Late Detraining Customers Avg Min Late" json:"AvgMinLate" bson:"avgminlate"`

	// Derived at import time from State.
	Country  string `csv:"-" json:"Country" bson:"country"`
	Region   string `csv:"-" json:"Region" bson:"region"`
	Division string `csv:"-" json:"Division" bson:"division"`
}

// FiscalPeriod returns the record's display period, e.g. "2024Q3".
func (arrival *StationArrival) FiscalPeriod() string {
	return FormatYearQuarter(arrival.FiscalYear, arrival.FiscalQuarter)
}

// OnTimeDetrainingCustomers is the detraining count minus the late count.
func (arrival *StationArrival) OnTimeDetrainingCustomers() float64 {
	return arrival.TotalDetrainingCustomers - arrival.LateDetrainingCustomers
}
