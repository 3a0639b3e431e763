package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository/dao"
)

type recordingPlayerDAO struct {
	gotID     string
	gotFields map[string]interface{}
}

func (d *recordingPlayerDAO) Insert(_ context.Context, player dao.Player) (dao.Player, error) {
	return player, nil
}

func (d *recordingPlayerDAO) FindAll(_ context.Context, _, _ string) ([]dao.Player, error) {
	return nil, nil
}

func (d *recordingPlayerDAO) FindByID(_ context.Context, id string) (dao.Player, error) {
	return dao.Player{ID: id}, nil
}

func (d *recordingPlayerDAO) Update(_ context.Context, id string, fields map[string]interface{}) (dao.Player, error) {
	d.gotID = id
	d.gotFields = fields
	return dao.Player{ID: id}, nil
}

func (d *recordingPlayerDAO) Delete(_ context.Context, _ string) error {
	return nil
}

type recordingTeamDAO struct {
	gotID     string
	gotFields map[string]interface{}
}

func (d *recordingTeamDAO) Insert(_ context.Context, team dao.Team) (dao.Team, error) {
	return team, nil
}

func (d *recordingTeamDAO) FindAll(_ context.Context, _ string) ([]dao.Team, error) {
	return nil, nil
}

func (d *recordingTeamDAO) FindByID(_ context.Context, id string) (dao.Team, error) {
	return dao.Team{ID: id}, nil
}

func (d *recordingTeamDAO) Update(_ context.Context, id string, fields map[string]interface{}) (dao.Team, error) {
	d.gotID = id
	d.gotFields = fields
	return dao.Team{ID: id}, nil
}

func (d *recordingTeamDAO) Delete(_ context.Context, _ string) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestPlayerRepository_Update_Fields(t *testing.T) {
	tests := []struct {
		name       string
		update     domain.PlayerUpdate
		wantFields map[string]interface{}
	}{
		{
			name: "sets the image url when a value is given",
			update: domain.PlayerUpdate{
				ImageURL: strPtr("https://cdn.example.com/kohli.png"),
			},
			wantFields: map[string]interface{}{
				"image_url": "https://cdn.example.com/kohli.png",
			},
		},
		{
			name: "clears the image url when an empty string is given",
			update: domain.PlayerUpdate{
				ImageURL: strPtr(""),
			},
			wantFields: map[string]interface{}{
				"image_url": nil,
			},
		},
		{
			name: "leaves the image url untouched when omitted",
			update: domain.PlayerUpdate{
				Name: strPtr("V. Kohli"),
			},
			wantFields: map[string]interface{}{
				"name": "V. Kohli",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := &recordingPlayerDAO{}
			repo := NewPlayerRepository(d)

			_, err := repo.Update(context.Background(), "p-1", tc.update)

			require.NoError(t, err)
			assert.Equal(t, "p-1", d.gotID)
			assert.Equal(t, tc.wantFields, d.gotFields)
		})
	}
}

func TestTeamRepository_Update_Fields(t *testing.T) {
	tests := []struct {
		name       string
		update     domain.TeamUpdate
		wantFields map[string]interface{}
	}{
		{
			name: "sets the logo url when a value is given",
			update: domain.TeamUpdate{
				LogoURL: strPtr("https://cdn.example.com/strikers.png"),
			},
			wantFields: map[string]interface{}{
				"logo_url": "https://cdn.example.com/strikers.png",
			},
		},
		{
			name: "clears the logo url when an empty string is given",
			update: domain.TeamUpdate{
				LogoURL: strPtr(""),
			},
			wantFields: map[string]interface{}{
				"logo_url": nil,
			},
		},
		{
			name: "leaves the logo url untouched when omitted",
			update: domain.TeamUpdate{
				Name: strPtr("Strikers"),
			},
			wantFields: map[string]interface{}{
				"name": "Strikers",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := &recordingTeamDAO{}
			repo := NewTeamRepository(d)

			_, err := repo.Update(context.Background(), "t-1", tc.update)

			require.NoError(t, err)
			assert.Equal(t, "t-1", d.gotID)
			assert.Equal(t, tc.wantFields, d.gotFields)
		})
	}
}
