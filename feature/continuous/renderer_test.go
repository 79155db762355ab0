package continuous

import (
	"testing"
	"time"

	"trimble-export/core/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func retrievalEvent(t *testing.T, rec export.FieldRecord) export.Event {
	t.Helper()
	key, err := export.NormalizeKey(rec, export.DefaultLayouts())
	require.NoError(t, err)

	ev := export.Event{Record: rec, Key: key}
	if rec.TimeRetrieved != "" {
		clock, err := time.Parse("15:04:05", rec.TimeRetrieved)
		require.NoError(t, err)
		ev.Time = &clock
	}
	return ev
}

func TestUpdateRenderer_LatLongOnly(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionLatLong}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2021-07-14",
		Latitude:      f64(64.1234),
		Longitude:     f64(-147.5678),
	})

	sql, err := r.Render(ev)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE tblContinuousData SET LATITUDE = 64.1234, LONGITUDE = -147.5678"+
			" WHERE PONDNAME = 'LAKE-03' AND SAMPLEDATE = '2021-07-14';",
		sql)
	// Only the coordinate columns appear in the SET clause
	assert.NotContains(t, sql, "RETRIEVALDATE")
	assert.NotContains(t, sql, "COMMENTS")
}

func TestUpdateRenderer_LatLongOnlyNeitherCoordinate(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionLatLong}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2021-07-14",
	})

	_, err := r.Render(ev)
	assert.ErrorIs(t, err, export.ErrNoUpdatableFields)
}

func TestUpdateRenderer_LatLongOnlySingleCoordinate(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionLatLong}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2021-07-14",
		Latitude:      f64(64.1234),
	})

	_, err := r.Render(ev)
	assert.ErrorIs(t, err, export.ErrNoUpdatableFields)
}

func TestUpdateRenderer_FullMode(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionFull, KeepComments: true}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2021-07-14",
		TimeRetrieved: "13:45:10",
		Latitude:      f64(64.1234),
		Longitude:     f64(-147.5678),
		Notes:         "logger pulled, O'Brien present",
	})

	sql, err := r.Render(ev)
	require.NoError(t, err)

	assert.Contains(t, sql, "RETRIEVALDATE = '2021-07-14'")
	assert.Contains(t, sql, "RETRIEVALTIME = '13:45:10'")
	assert.Contains(t, sql, "LATITUDE = 64.1234")
	assert.Contains(t, sql, "LONGITUDE = -147.5678")
	assert.Contains(t, sql, "COMMENTS = 'logger pulled, O''Brien present'")
	assert.Contains(t, sql, "WHERE PONDNAME = 'LAKE-03' AND SAMPLEDATE = '2021-07-14';")
}

func TestUpdateRenderer_FullModeNeverOverwritesAbsentFields(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionFull, KeepComments: true}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2021-07-14",
	})

	sql, err := r.Render(ev)
	require.NoError(t, err)

	// Date is always known; everything absent stays out of the SET clause
	assert.Contains(t, sql, "SET RETRIEVALDATE = '2021-07-14' WHERE")
	assert.NotContains(t, sql, "RETRIEVALTIME")
	assert.NotContains(t, sql, "LATITUDE")
	assert.NotContains(t, sql, "LONGITUDE")
	assert.NotContains(t, sql, "COMMENTS")
	assert.NotContains(t, sql, "NULL")
}

func TestUpdateRenderer_CommentsDroppedByDefault(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionFull}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2021-07-14",
		Notes:         "should not appear",
	})

	sql, err := r.Render(ev)
	require.NoError(t, err)
	assert.NotContains(t, sql, "should not appear")
}

func TestUpdateRenderer_Idempotent(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionFull, KeepComments: true}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2021-07-14",
		TimeRetrieved: "13:45:10",
		Latitude:      f64(64.1234),
		Longitude:     f64(-147.5678),
		Notes:         "all good",
	})

	first, err := r.Render(ev)
	require.NoError(t, err)
	second, err := r.Render(ev)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateRenderer_WhereUsesOriginalSiteCasing(t *testing.T) {
	r := UpdateRenderer{Profile: ShallowLakesProfile(), Selection: export.SelectionFull}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      " Lake-03 ",
		DateRetrieved: "2021-07-14",
	})

	sql, err := r.Render(ev)
	require.NoError(t, err)
	// Trimmed but not case-folded: the master database knows the site as recorded
	assert.Contains(t, sql, "PONDNAME = 'Lake-03'")
}

func TestInsertRenderer(t *testing.T) {
	r := InsertRenderer{Profile: ShallowLakesProfile(), KeepComments: true}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2023-09-08",
		TimeRetrieved: "09:15:00",
		Latitude:      f64(64.1234),
		Longitude:     f64(-147.5678),
		Notes:         "deployed at inlet",
		SourceFile:    "YUCH_2023_Deployment.gdb",
	})

	sql, err := r.Render(ev)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO tblContinuousData(PONDNAME,SAMPLEDATE,DEPLOYDATE,DEPLOYTIME,LATITUDE,LONGITUDE,COMMENTS,SOURCE)"+
			" VALUES('LAKE-03','2023-09-08','2023-09-08','09:15:00',64.1234,-147.5678,'deployed at inlet','YUCH_2023_Deployment.gdb');",
		sql)
}

func TestInsertRenderer_MinimalRecord(t *testing.T) {
	r := InsertRenderer{Profile: ShallowLakesProfile()}

	ev := retrievalEvent(t, export.FieldRecord{
		Row:           1,
		SiteName:      "LAKE-03",
		DateRetrieved: "2023-09-08",
	})

	sql, err := r.Render(ev)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO tblContinuousData(PONDNAME,SAMPLEDATE,DEPLOYDATE)"+
			" VALUES('LAKE-03','2023-09-08','2023-09-08');",
		sql)
}

func TestGetProfileByName(t *testing.T) {
	assert.Equal(t, "tblContinuousData", GetProfileByName("shallow_lakes").TableName)
	assert.Equal(t, "continuous_events", GetProfileByName("generic").TableName)
	// Unknown names fall back to the shallow lakes schema
	assert.Equal(t, "tblContinuousData", GetProfileByName("unknown").TableName)
}
