package app_test

import (
	"testing"

	"go.trai.ch/eagroute/internal/app"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app     *app.App
	loader  *mocks.MockConfigLoader
	backend *mocks.MockBackend
	watcher *mocks.MockWatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	backend := mocks.NewMockBackend(ctrl)
	connector := mocks.NewMockBackendConnector(ctrl)
	watcher := mocks.NewMockWatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	connector.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(backend, nil).AnyTimes()

	return &fixture{
		app:     app.New(loader, log, connector, watcher),
		loader:  loader,
		backend: backend,
		watcher: watcher,
	}
}

// testSettings disables fetch retries so failures surface at once.
func testSettings() *domain.Settings {
	s := domain.DefaultSettings()
	s.Retry.Attempts = 1
	return &s
}

func plainGrid() domain.MapGrid {
	g := domain.MapGrid{Grid: make(map[string]domain.GridCell), GridSize: domain.GridSize}
	for y := range domain.GridSize {
		for x := range domain.GridSize {
			c := domain.Coord{X: x, Y: y}
			g.Grid[c.String()] = domain.GridCell{X: x, Y: y, NodeType: domain.NodePlain}
		}
	}
	return g
}

// stubDashboard answers every resource the dashboard subscribes to.
func (f *fixture) stubDashboard(gridErr error) {
	b := f.backend
	if gridErr != nil {
		b.EXPECT().Grid(gomock.Any()).Return(domain.MapGrid{}, gridErr).AnyTimes()
	} else {
		b.EXPECT().Grid(gomock.Any()).Return(plainGrid(), nil).AnyTimes()
	}
	b.EXPECT().Bots(gomock.Any()).Return([]domain.Bot{
		{ID: 1, Name: "Rover", CurrentX: 2, CurrentY: 2, Status: domain.BotIdle},
	}, nil).AnyTimes()
	b.EXPECT().Orders(gomock.Any()).Return([]domain.Order{}, nil).AnyTimes()
	b.EXPECT().Stats(gomock.Any()).Return(domain.SystemStats{}, nil).AnyTimes()
	b.EXPECT().Restaurants(gomock.Any()).Return([]domain.Restaurant{}, nil).AnyTimes()
	b.EXPECT().BlockedPaths(gomock.Any()).Return(domain.BlockedPaths{}, nil).AnyTimes()
	b.EXPECT().AutoMovementStatus(gomock.Any()).Return(domain.AutoMovementStatus{}, nil).AnyTimes()
}
