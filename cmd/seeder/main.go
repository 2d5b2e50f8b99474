package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

var authToken string

func authorizedPost(url string, body interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s failed with status: %d", url, resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}

func create(apiURL, path string, body interface{}) string {
	result, err := authorizedPost(apiURL+path, body)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("Failed to create record")
		return ""
	}
	id, _ := result["id"].(string)
	log.WithFields(log.Fields{"path": path, "id": id}).Info("Created record")
	return id
}

func createLocation(apiURL, name, code, parentID, description string) string {
	return create(apiURL, "/locations", map[string]interface{}{
		"name":        name,
		"code":        code,
		"parent_id":   parentID,
		"description": description,
	})
}

func main() {
	authToken = os.Getenv("SEED_AUTH_TOKEN")

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	log.WithField("api_url", apiURL).Info("Seeding demo print shop data")

	// Location hierarchy of a small print shop.
	fabrication := createLocation(apiURL, "FABRICATION", "FAB", "", "Print production area")

	prepress := createLocation(apiURL, "PRE-PRESS", "PRE", fabrication, "Pre-press department")
	ctpArea := createLocation(apiURL, "CTP", "CTP-AREA", prepress, "Computer-to-plate area")
	createLocation(apiURL, "DESIGN", "DESIGN", prepress, "Design workstations")

	press := createLocation(apiURL, "PRESS", "IMP", fabrication, "Press department")
	offsetArea := createLocation(apiURL, "OFFSET", "OFFS", press, "Offset presses")
	digitalArea := createLocation(apiURL, "DIGITAL", "DIG", press, "Digital printers")

	finishing := createLocation(apiURL, "FINISHING", "ACAB", fabrication, "Finishing department")
	cuttingArea := createLocation(apiURL, "CUTTING", "CORTE", finishing, "Cutting and guillotine area")
	foldingArea := createLocation(apiURL, "FOLDING", "DOBRA", finishing, "Folding machines area")
	createLocation(apiURL, "GLUING", "COLA", finishing, "Gluing section")

	warehouse := createLocation(apiURL, "WAREHOUSE", "ALM", "", "Central warehouse")
	createLocation(apiURL, "INKS", "ALM-TINT", warehouse, "Ink stock")
	createLocation(apiURL, "PAPER", "ALM-PAP", warehouse, "Paper stock")
	createLocation(apiURL, "SPARES", "ALM-PC", warehouse, "Spare parts stock")

	createLocation(apiURL, "SHIPPING", "EXP", "", "Shipping and delivery area")
	createLocation(apiURL, "ADMINISTRATION", "ADM", "", "Administrative offices")

	// Assets placed in the hierarchy above.
	offsetPress := create(apiURL, "/assets", map[string]interface{}{
		"name":         "Heidelberg GTO-52 Offset Press",
		"code":         "OFF-001",
		"status":       "operational",
		"criticality":  "high",
		"manufacturer": "Heidelberg",
		"model":        "GTO-52",
		"location_id":  offsetArea,
		"category":     "Offset Press",
	})
	create(apiURL, "/assets", map[string]interface{}{
		"name":         "Polar 115 Industrial Guillotine",
		"code":         "GUIL-01",
		"status":       "operational",
		"criticality":  "high",
		"manufacturer": "Polar",
		"model":        "115",
		"location_id":  cuttingArea,
		"category":     "Guillotine",
	})
	create(apiURL, "/assets", map[string]interface{}{
		"name":         "Stahl T-52 Folding Machine",
		"code":         "DOB-01",
		"status":       "maintenance",
		"criticality":  "medium",
		"manufacturer": "Stahl",
		"model":        "T-52",
		"location_id":  foldingArea,
		"category":     "Folding Machine",
	})
	create(apiURL, "/assets", map[string]interface{}{
		"name":         "Heidelberg Suprasetter CTP",
		"code":         "CTP-01",
		"status":       "operational",
		"criticality":  "high",
		"manufacturer": "Heidelberg",
		"model":        "Suprasetter A75",
		"location_id":  ctpArea,
		"category":     "CTP",
	})
	create(apiURL, "/assets", map[string]interface{}{
		"name":         "Konica Minolta Digital Press",
		"code":         "DIG-01",
		"status":       "operational",
		"criticality":  "medium",
		"manufacturer": "Konica Minolta",
		"model":        "AccurioPress C3080",
		"location_id":  digitalArea,
		"category":     "Digital Press",
	})

	create(apiURL, "/technicians", map[string]interface{}{
		"name": "Joao Silva", "role": "Mechanical Technician", "active": true,
		"skills": []string{"mechanical"}, "hourly_rate": 45.0,
	})
	create(apiURL, "/technicians", map[string]interface{}{
		"name": "Maria Souza", "role": "Electrical Technician", "active": true,
		"skills": []string{"electrical"}, "hourly_rate": 50.0,
	})

	inventory := []map[string]interface{}{
		{"sku": "ROL-6205", "name": "Bearing 6205", "unit": "pc", "current_qty": 25.0, "min_qty": 10.0, "cost": 18.0},
		{"sku": "OL-ISO68", "name": "ISO 68 Lubricant Oil", "unit": "L", "current_qty": 200.0, "min_qty": 50.0, "cost": 12.0},
		{"sku": "COR-A45", "name": "A45 Belt", "unit": "pc", "current_qty": 8.0, "min_qty": 5.0, "cost": 35.0},
		{"sku": "BLANQ-01", "name": "Printing Blanket", "unit": "pc", "current_qty": 15.0, "min_qty": 5.0, "cost": 120.0},
		{"sku": "CHAPA-01", "name": "Offset CTP Plate", "unit": "pc", "current_qty": 50.0, "min_qty": 10.0, "cost": 45.0},
		{"sku": "TINT-K", "name": "Black Offset Ink", "unit": "kg", "current_qty": 40.0, "min_qty": 10.0, "cost": 35.0},
	}
	for _, item := range inventory {
		create(apiURL, "/inventory", item)
	}

	// Two completed work orders so KPIs have something to chew on.
	now := time.Now().UTC()
	sixHoursAgo := now.Add(-6 * time.Hour)
	thirtyHoursAgo := now.Add(-30 * time.Hour)
	dayAgo := now.Add(-24 * time.Hour)
	downtime := 120

	create(apiURL, "/workorders", map[string]interface{}{
		"title":            "High Vibration on Press Drive",
		"description":      "Investigate vibration source and correct",
		"asset_id":         offsetPress,
		"status":           "completed",
		"type":             "corrective",
		"priority":         "high",
		"planned_start":    thirtyHoursAgo,
		"planned_end":      now,
		"started_at":       thirtyHoursAgo,
		"completed_at":     dayAgo,
		"downtime_minutes": downtime,
	})
	create(apiURL, "/workorders", map[string]interface{}{
		"title":         "Monthly Preventive Inspection",
		"description":   "Standard press inspection checklist",
		"asset_id":      offsetPress,
		"status":        "completed",
		"type":          "preventive",
		"priority":      "medium",
		"planned_start": sixHoursAgo,
		"planned_end":   now,
		"started_at":    sixHoursAgo,
		"completed_at":  now,
	})

	// A running preventive plan for the offset press.
	nextDue := now.AddDate(0, 0, 30)
	create(apiURL, "/plans", map[string]interface{}{
		"code":          "PLAN-001",
		"title":         "Offset Press Monthly Service",
		"asset_id":      offsetPress,
		"strategy":      "time",
		"interval_days": 30,
		"next_due_at":   nextDue,
		"active":        true,
	})

	log.Info("Seeding completed")
}
