package scheduleio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icedraw/schedgen/internal/core/models"
)

const validInputJSON = `{
	"divisions": [{"id": 1, "name": "Men's A"}],
	"teams": [
		{"id": 1, "divisionId": 1},
		{"id": 2, "divisionId": 1}
	],
	"drawSlots": [
		{"date": "2024-01-08", "time": "18:00", "sheets": [{"id": 1, "isAvailable": true}]}
	],
	"strategies": [
		{"localId": 1, "isIntraDivision": true, "divisionId": 1, "gamesPerTeam": 1, "drawSlotKeys": ["2024-01-08|18:00"]}
	],
	"byeRequests": [],
	"seed": 7,
	"optimizationTimeBudgetMs": 1000
}`

func TestDecodeInputAcceptsWellFormedPayload(t *testing.T) {
	input, err := DecodeInputBytes([]byte(validInputJSON))
	require.NoError(t, err)
	require.Len(t, input.Teams, 2)
	require.Equal(t, uint32(7), input.Seed)
}

func TestDecodeInputRejectsUnknownFields(t *testing.T) {
	payload := strings.Replace(validInputJSON, `"seed": 7,`, `"seed": 7, "unknownField": true,`, 1)
	_, err := DecodeInputBytes([]byte(payload))
	require.Error(t, err)
}

func TestDecodeInputRejectsMissingRequiredFields(t *testing.T) {
	_, err := DecodeInputBytes([]byte(`{"teams": [{"id": 1, "divisionId": 1}]}`))
	require.Error(t, err)
}

func TestDecodeInputRejectsStructurallyInvalidInput(t *testing.T) {
	payload := `{
		"divisions": [{"id": 1, "name": "Men's A"}],
		"teams": [{"id": 1, "divisionId": 99}],
		"drawSlots": [{"date": "2024-01-08", "time": "18:00", "sheets": [{"id": 1, "isAvailable": true}]}],
		"strategies": [{"localId": 1, "isIntraDivision": false, "gamesPerTeam": 1, "drawSlotKeys": ["2024-01-08|18:00"]}]
	}`
	_, err := DecodeInputBytes([]byte(payload))
	require.Error(t, err)
}

func TestEncodeResultRoundTripsShape(t *testing.T) {
	result := models.ScheduleResult{
		Games: []models.GeneratedGame{
			{Team1ID: 1, Team2ID: 2, GameDate: "2024-01-08", GameTime: "18:00", SheetID: 1},
		},
		Unschedulable: []models.UnschedulableMatchup{},
		TeamStats:     []models.TeamStats{*models.NewTeamStats(1)},
		Warnings:      []models.Warning{{Severity: models.SeverityInfo, Message: "ok"}},
		TotalScore:    12.5,
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeResult(&buf, result))

	var decoded models.ScheduleResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Games, 1)
	require.Equal(t, 12.5, decoded.TotalScore)
	require.Equal(t, "ok", decoded.Warnings[0].Message)
}
