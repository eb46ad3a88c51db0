package fraotp

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/gocarina/gocsv"
	"github.com/railreport/railreport/pkg/database"
	"github.com/railreport/railreport/pkg/dataimporter/datasets"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/util"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bulkWriteBatchSize = 2000

// QuarterlyReport is the FRA intercity passenger rail service quality
// report CSV: one row per train, arrival station and fiscal quarter.
type QuarterlyReport struct {
	Arrivals []otp.StationArrival
}

func (r *QuarterlyReport) ParseFile(reader io.Reader) error {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		c := csv.NewReader(in)
		c.FieldsPerRecord = -1
		return c
	})

	if err := gocsv.Unmarshal(reader, &r.Arrivals); err != nil {
		return err
	}

	for i := range r.Arrivals {
		normalise(&r.Arrivals[i])
	}

	log.Info().Int("arrivals", len(r.Arrivals)).Msg("Parsed quarterly report")

	return nil
}

func normalise(arrival *otp.StationArrival) {
	arrival.ServiceLine = util.NormalizeString(arrival.ServiceLine)
	arrival.Service = util.NormalizeString(arrival.Service)
	arrival.SubService = util.NormalizeString(arrival.SubService)
	arrival.ArrivalStationCode = util.NormalizeString(arrival.ArrivalStationCode)
	arrival.StationName = util.NormalizeString(arrival.StationName)
	arrival.City = util.NormalizeString(arrival.City)
	arrival.State = util.NormalizeString(arrival.State)

	// The dataset leaves the minutes-late column blank when a quarter had
	// no late detraining customers, which the CSV decoder reads as 0.
	if arrival.LateDetrainingCustomers == 0 {
		arrival.AvgMinLate = math.NaN()
	}

	arrival.Country = otp.LookupCountry(arrival.State)
	arrival.Region, arrival.Division = otp.LookupRegionDivision(arrival.State)

	if arrival.State != "" && arrival.Country == "" {
		log.Debug().Str("state", arrival.State).Msg("Unknown jurisdiction")
	}
}

func (r *QuarterlyReport) Import(dataset datasets.DataSet, datasource *otp.DataSource) error {
	arrivalsCollection := database.GetCollection(otp.ArrivalsCollectionName)

	var updateOperations []mongo.WriteModel
	imported := 0

	for _, arrival := range r.Arrivals {
		if arrival.ArrivalStationCode == "" {
			continue
		}

		primaryID := fmt.Sprintf("%s-%d-%s-%dQ%d",
			dataset.Identifier, arrival.TrainNumber, arrival.ArrivalStationCode,
			arrival.FiscalYear, arrival.FiscalQuarter)

		bsonRep, _ := bson.Marshal(bson.M{"$set": bson.M{
			"primaryidentifier":        primaryID,
			"fiscalyear":               arrival.FiscalYear,
			"fiscalquarter":            arrival.FiscalQuarter,
			"serviceline":              arrival.ServiceLine,
			"service":                  arrival.Service,
			"subservice":               arrival.SubService,
			"trainnumber":              arrival.TrainNumber,
			"arrivalstationcode":       arrival.ArrivalStationCode,
			"stationname":              arrival.StationName,
			"city":                     arrival.City,
			"state":                    arrival.State,
			"latitude":                 arrival.Latitude,
			"longitude":                arrival.Longitude,
			"totaldetrainingcustomers": arrival.TotalDetrainingCustomers,
			"latedetrainingcustomers":  arrival.LateDetrainingCustomers,
			"avgminlate":               arrival.AvgMinLate,
			"country":                  arrival.Country,
			"region":                   arrival.Region,
			"division":                 arrival.Division,
			"datasource":               datasource,
		}})
		updateModel := mongo.NewUpdateOneModel()
		updateModel.SetFilter(bson.M{"primaryidentifier": primaryID})
		updateModel.SetUpdate(bsonRep)
		updateModel.SetUpsert(true)

		updateOperations = append(updateOperations, updateModel)

		if len(updateOperations) >= bulkWriteBatchSize {
			if err := writeBatch(arrivalsCollection, updateOperations); err != nil {
				return err
			}

			imported += len(updateOperations)
			updateOperations = nil

			log.Info().Int("imported", imported).Msg("Written station arrivals")
		}
	}

	if len(updateOperations) > 0 {
		if err := writeBatch(arrivalsCollection, updateOperations); err != nil {
			return err
		}
		imported += len(updateOperations)
	}

	log.Info().Int("imported", imported).Msg("Import complete")

	return nil
}

func writeBatch(collection *mongo.Collection, operations []mongo.WriteModel) error {
	_, err := collection.BulkWrite(context.Background(), operations, &options.BulkWriteOptions{})
	return err
}
