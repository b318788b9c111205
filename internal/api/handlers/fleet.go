package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZHABODAV/fleet-list/internal/api/models"
	"github.com/ZHABODAV/fleet-list/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/log"
)

// FleetHandler handles fleet preset requests
type FleetHandler struct {
	fleetDir string
	logger   log.Logger
}

// ResolveFleetDir returns dir as an absolute path, falling back to
// FLEET_DIR and then ./examples/fleets when dir is empty.
func ResolveFleetDir(dir string) string {
	if dir == "" {
		dir = os.Getenv("FLEET_DIR")
	}
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, "examples", "fleets")
		} else {
			dir = "./examples/fleets"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetDir string, logger log.Logger) *FleetHandler {
	return &FleetHandler{fleetDir: fleetDir, logger: logger}
}

// ListFleets handles GET /api/v1/fleets
func (h *FleetHandler) ListFleets(c *gin.Context) {
	fleets := []models.FleetInfo{}

	entries, err := os.ReadDir(h.fleetDir)
	if err != nil {
		h.logger.Log("handler", "fleets", "dir", h.fleetDir, "err", err)
		c.JSON(http.StatusOK, gin.H{"fleets": fleets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.fleetDir, entry.Name())
		info, err := loadFleetInfo(path, entry.Name())
		if err != nil {
			h.logger.Log("handler", "fleets", "file", path, "err", err)
			continue // Skip invalid files
		}
		fleets = append(fleets, *info)
	}

	c.JSON(http.StatusOK, gin.H{"fleets": fleets})
}

func loadFleetInfo(path, filename string) (*models.FleetInfo, error) {
	fleet, err := config.LoadFleetFile(path)
	if err != nil {
		return nil, err
	}

	// "river.yaml" -> "river"; the ID is what requests pass as fleet.file.
	id := strings.TrimSuffix(filename, ".yaml")

	name := fleet.Name
	if name == "" {
		name = id
	}

	ports := []string{}
	if len(fleet.Legs) > 0 {
		ports = append(ports, fleet.Legs[0].From)
		for _, l := range fleet.Legs {
			ports = append(ports, l.To)
		}
	}

	return &models.FleetInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.FleetSpecs{
			Vessels:      fleet.Vessels,
			IntervalDays: fleet.IntervalDays,
			Capacity:     fleet.Capacity,
			Ports:        ports,
		},
	}, nil
}
