package caseid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid("1234567-89.2020.8.26.0100"))
	assert.False(t, Valid("1234567-89.2020.8.26.010"), "forum too short")
	assert.False(t, Valid("1234567-89.2020.8.25.0100"), "wrong court segment")
	assert.False(t, Valid("x1234567-89.2020.8.26.0100"), "leading garbage")
	assert.False(t, Valid("1234567-89.2020.8.26.0100 "), "trailing garbage")
	assert.False(t, Valid(""))
}

func TestFromList(t *testing.T) {
	got := FromList("1234567-89.2020.8.26.0100, not-a-case, 7654321-01.2019.8.26.0053")
	require.Equal(t, []string{"1234567-89.2020.8.26.0100", "7654321-01.2019.8.26.0053"}, got)
}

func TestFromList_KeepsDuplicates(t *testing.T) {
	got := FromList("1234567-89.2020.8.26.0100,1234567-89.2020.8.26.0100")
	require.Len(t, got, 2)
}

func TestFromList_Empty(t *testing.T) {
	assert.Nil(t, FromList("nothing, here"))
	assert.Nil(t, FromList(""))
}

func TestScan(t *testing.T) {
	text := "ofício ref. 1234567-89.2020.8.26.0100 e apenso\n" +
		"ver também 7654321-01.2019.8.26.0053 (arquivado)\n" +
		"linha sem processo\n"
	got := Scan(text)
	require.Equal(t, []string{"1234567-89.2020.8.26.0100", "7654321-01.2019.8.26.0053"}, got)
}

func TestScan_MultiplePerLine(t *testing.T) {
	got := Scan("1111111-11.2011.8.26.0001 2222222-22.2012.8.26.0002")
	require.Len(t, got, 2)
}

func TestRecognize_ListWinsOverText(t *testing.T) {
	got := Recognize("1234567-89.2020.8.26.0100", "7654321-01.2019.8.26.0053")
	require.Equal(t, []string{"1234567-89.2020.8.26.0100"}, got)
}

func TestRecognize_Empty(t *testing.T) {
	assert.Nil(t, Recognize("", ""))
	assert.Nil(t, Recognize("  ", "no numbers at all"))
}

func TestSplit(t *testing.T) {
	digitYear, forum := Split("1234567-89.2020.8.26.0100")
	assert.Equal(t, "1234567-89.2020", digitYear)
	assert.Equal(t, "0100", forum)
}
