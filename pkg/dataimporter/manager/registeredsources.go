package manager

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/railreport/railreport/pkg/dataimporter/datasets"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const datasourcesDirectory = "data/datasources/"

func GetRegisteredDataSets() []datasets.DataSet {
	registered, err := loadDataSets(datasourcesDirectory)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load datasources directory")
	}

	return registered
}

// loadDataSets reads every YAML file under the directory. A file may hold
// several datasource documents; each dataset inherits its source's
// provider and gets the composed identifier.
func loadDataSets(directory string) ([]datasets.DataSet, error) {
	var registeredDatasets []datasets.DataSet

	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() {
				return nil
			}

			if filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading datasource file")

			datasourceYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			decoder := yaml.NewDecoder(bytes.NewReader(datasourceYaml))

			for {
				var datasource datasets.DataSource
				if decoder.Decode(&datasource) != nil {
					break
				}

				for _, dataset := range datasource.Datasets {
					dataset.Identifier = fmt.Sprintf("%s-%s", datasource.Identifier, dataset.Identifier)
					dataset.DataSourceRef = datasource.Identifier
					dataset.Provider = datasource.Provider

					registeredDatasets = append(registeredDatasets, dataset)
				}
			}

			return nil
		})
	if err != nil {
		return nil, err
	}

	return registeredDatasets, nil
}
