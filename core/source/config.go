package source

// Config holds configuration for the field record source.
type Config struct {
	// Path is the exported field data file, used when the command line
	// does not name one.
	Path string `mapstructure:"path" default:""`
	// Delimiter separates fields: comma or tab.
	Delimiter string `mapstructure:"delimiter" default:"comma"`
	// SiteColumn is the header name of the site identifier column.
	SiteColumn string `mapstructure:"site_column" default:"SiteName"`
	// DateColumn is the header name of the retrieval date column.
	DateColumn string `mapstructure:"date_column" default:"DateRetrieved"`
	// TimeColumn is the header name of the optional retrieval time column.
	TimeColumn string `mapstructure:"time_column" default:"TimeRetrieved"`
	// LatitudeColumn is the header name of the optional latitude column.
	LatitudeColumn string `mapstructure:"latitude_column" default:"Latitude"`
	// LongitudeColumn is the header name of the optional longitude column.
	LongitudeColumn string `mapstructure:"longitude_column" default:"Longitude"`
	// NotesColumn is the header name of the optional free-form notes column.
	NotesColumn string `mapstructure:"notes_column" default:"Notes"`
}
