package export

import (
	"fmt"
	"time"
)

// Config holds run-level configuration for the export pipeline.
type Config struct {
	// Mode selects the update column set (full, latlong).
	Mode string `mapstructure:"mode" default:"full"`
	// DateLayout is the Go reference layout for input date strings.
	DateLayout string `mapstructure:"date_layout" default:"2006-01-02"`
	// TimeLayout is the Go reference layout for input time strings.
	TimeLayout string `mapstructure:"time_layout" default:"15:04:05"`
	// WindowStart is the first accepted retrieval date (inclusive, optional).
	WindowStart string `mapstructure:"window_start" default:""`
	// WindowEnd is the last accepted retrieval date (inclusive, optional).
	WindowEnd string `mapstructure:"window_end" default:""`
	// KeepComments includes the field notes in rendered statements.
	KeepComments bool `mapstructure:"keep_comments" default:"false"`
	// Profile selects the master database schema profile (shallow_lakes, generic).
	Profile string `mapstructure:"profile" default:"shallow_lakes"`
}

// Selection returns the configured update selection.
func (c Config) Selection() UpdateSelection {
	return UpdateSelection(c.Mode)
}

// IsValidMode checks if the configured mode is a recognized selection.
func (c Config) IsValidMode() bool {
	return c.Selection().Valid()
}

// Options materializes run options from the configuration, parsing the
// optional window bounds with the configured date layout.
func (c Config) Options() (Options, error) {
	opts := Options{Layouts: Layouts{Date: c.DateLayout, Time: c.TimeLayout}}

	if c.WindowStart != "" {
		start, err := time.Parse(c.DateLayout, c.WindowStart)
		if err != nil {
			return Options{}, fmt.Errorf("invalid window start %q: %w", c.WindowStart, err)
		}
		opts.WindowStart = &start
	}

	if c.WindowEnd != "" {
		end, err := time.Parse(c.DateLayout, c.WindowEnd)
		if err != nil {
			return Options{}, fmt.Errorf("invalid window end %q: %w", c.WindowEnd, err)
		}
		opts.WindowEnd = &end
	}

	return opts, nil
}
