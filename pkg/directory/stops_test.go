package directory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmbeta/kmbeta/pkg/kmb"
)

func TestStopDirectoryLookup(t *testing.T) {
	stops := []kmb.Stop{
		{Stop: "1", NameEn: "Central", NameTc: "中環", NameSc: "中环"},
		{Stop: "2", NameEn: "Admiralty", NameTc: "金鐘", NameSc: "金钟"},
	}

	stopDirectory, err := NewStopDirectory(stops, kmb.LanguageEnglish)
	require.NoError(t, err)

	name, err := stopDirectory.Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, "Central", name)

	name, err = stopDirectory.Lookup("2")
	require.NoError(t, err)
	assert.Equal(t, "Admiralty", name)
}

func TestStopDirectoryLanguageSelection(t *testing.T) {
	stops := []kmb.Stop{
		{Stop: "1", NameEn: "Central", NameTc: "中環", NameSc: "中环"},
	}

	stopDirectory, err := NewStopDirectory(stops, kmb.LanguageTraditionalChinese)
	require.NoError(t, err)

	name, err := stopDirectory.Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, "中環", name)
}

func TestStopDirectoryUnknownStop(t *testing.T) {
	stopDirectory, err := NewStopDirectory([]kmb.Stop{
		{Stop: "1", NameEn: "Central", NameTc: "中環"},
	}, kmb.LanguageEnglish)
	require.NoError(t, err)

	_, err = stopDirectory.Lookup("999")
	require.Error(t, err)

	var unknownStop *UnknownStopError
	require.ErrorAs(t, err, &unknownStop)
	assert.Equal(t, "999", unknownStop.StopID)
}

func TestStopDirectoryMalformedRecordFailsWholeLoad(t *testing.T) {
	stops := []kmb.Stop{
		{Stop: "1", NameEn: "Central", NameTc: "中環"},
		{Stop: "2"}, // no display name in any language
		{Stop: "3", NameEn: "Wan Chai", NameTc: "灣仔"},
	}

	stopDirectory, err := NewStopDirectory(stops, kmb.LanguageEnglish)
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Nil(t, stopDirectory)
}

func TestStopDirectoryMissingIDFailsWholeLoad(t *testing.T) {
	stops := []kmb.Stop{
		{NameEn: "Central", NameTc: "中環"},
	}

	_, err := NewStopDirectory(stops, kmb.LanguageEnglish)
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestStopDirectoryDuplicateIDLastWins(t *testing.T) {
	stops := []kmb.Stop{
		{Stop: "1", NameEn: "Old Name", NameTc: "舊"},
		{Stop: "1", NameEn: "New Name", NameTc: "新"},
	}

	stopDirectory, err := NewStopDirectory(stops, kmb.LanguageEnglish)
	require.NoError(t, err)

	name, err := stopDirectory.Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", name)

	assert.Equal(t, 1, stopDirectory.Size())
}

func TestStopDirectoryEmptyLoad(t *testing.T) {
	stopDirectory, err := NewStopDirectory(nil, kmb.LanguageEnglish)
	require.NoError(t, err)

	_, err = stopDirectory.Lookup("1")
	var unknownStop *UnknownStopError
	assert.True(t, errors.As(err, &unknownStop))
}
