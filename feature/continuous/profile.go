package continuous

// SchemaProfile defines master-database schema mappings for the continuous
// data logger table.
type SchemaProfile struct {
	// TableName is the name of the continuous table in the master database.
	TableName string

	// Columns maps logical field names to actual database column names.
	Columns map[string]string
}

// Column name constants for logical field references.
const (
	ColSiteName      = "site_name"
	ColSampleDate    = "sample_date"
	ColDateRetrieved = "date_retrieved"
	ColTimeRetrieved = "time_retrieved"
	ColDateDeployed  = "date_deployed"
	ColTimeDeployed  = "time_deployed"
	ColLatitude      = "latitude"
	ColLongitude     = "longitude"
	ColNotes         = "notes"
	ColSource        = "source"
)

// ShallowLakesProfile returns the schema profile for the shallow lakes
// monitoring database, which keys every table on pond name and sample date.
func ShallowLakesProfile() SchemaProfile {
	return SchemaProfile{
		TableName: "tblContinuousData",
		Columns: map[string]string{
			ColSiteName:      "PONDNAME",
			ColSampleDate:    "SAMPLEDATE",
			ColDateRetrieved: "RETRIEVALDATE",
			ColTimeRetrieved: "RETRIEVALTIME",
			ColDateDeployed:  "DEPLOYDATE",
			ColTimeDeployed:  "DEPLOYTIME",
			ColLatitude:      "LATITUDE",
			ColLongitude:     "LONGITUDE",
			ColNotes:         "COMMENTS",
			ColSource:        "SOURCE",
		},
	}
}

// GenericProfile returns a schema profile with neutral snake_case names,
// for targets that don't follow the shallow lakes naming.
func GenericProfile() SchemaProfile {
	return SchemaProfile{
		TableName: "continuous_events",
		Columns: map[string]string{
			ColSiteName:      "site_name",
			ColSampleDate:    "sample_date",
			ColDateRetrieved: "date_retrieved",
			ColTimeRetrieved: "time_retrieved",
			ColDateDeployed:  "date_deployed",
			ColTimeDeployed:  "time_deployed",
			ColLatitude:      "latitude",
			ColLongitude:     "longitude",
			ColNotes:         "notes",
			ColSource:        "source",
		},
	}
}

// GetProfileByName returns the appropriate schema profile for a given name.
func GetProfileByName(name string) SchemaProfile {
	switch name {
	case "shallow_lakes":
		return ShallowLakesProfile()
	case "generic":
		return GenericProfile()
	default:
		// Default to shallow lakes
		return ShallowLakesProfile()
	}
}
