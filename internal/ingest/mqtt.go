// Package ingest subscribes to meter readings published over MQTT and
// records them against assets. Readings are stored as-is; they do not
// trigger maintenance plans.
package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/maintkit/cmms/internal/store"
)

// DefaultTopic is the subscription filter; the wildcard segment carries the
// asset id, e.g. meters/3fa85f64-.../reading.
const DefaultTopic = "meters/+/reading"

// ReadingMessage is the JSON payload expected on the meter topic.
type ReadingMessage struct {
	AssetID   string     `json:"asset_id"`
	MeterType string     `json:"meter_type"`
	Value     float64    `json:"value"`
	Timestamp *time.Time `json:"timestamp"`
}

// MeterIngester consumes meter readings from an MQTT broker.
type MeterIngester struct {
	Store  *store.Store
	client mqtt.Client
}

// NewMeterIngester creates an ingester bound to the given store.
func NewMeterIngester(s *store.Store) *MeterIngester {
	return &MeterIngester{Store: s}
}

// Start connects to the broker and subscribes to the meter topic.
func (m *MeterIngester) Start(brokerURL, clientID string) error {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	m.client = mqtt.NewClient(opts)
	if token := m.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}

	if token := m.client.Subscribe(DefaultTopic, 1, m.handleMessage); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe: %w", token.Error())
	}

	log.WithFields(log.Fields{
		"broker": brokerURL,
		"topic":  DefaultTopic,
	}).Info("Meter ingester started")
	return nil
}

// Stop disconnects from the broker.
func (m *MeterIngester) Stop() {
	if m.client != nil && m.client.IsConnected() {
		m.client.Disconnect(250)
	}
}

func (m *MeterIngester) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	reading, err := ParseReading(msg.Payload())
	if err != nil {
		log.WithError(err).WithField("topic", msg.Topic()).Warn("Dropping malformed meter reading")
		return
	}
	m.Store.RecordMeterReading(reading.AssetID, reading.MeterType, reading.Value, *reading.Timestamp)
	log.WithFields(log.Fields{
		"asset_id":   reading.AssetID,
		"meter_type": reading.MeterType,
		"value":      reading.Value,
	}).Debug("Recorded meter reading")
}

// ParseReading validates and decodes a meter reading payload. A missing
// timestamp defaults to the time of ingestion.
func ParseReading(payload []byte) (*ReadingMessage, error) {
	var msg ReadingMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("invalid reading payload: %w", err)
	}
	if msg.AssetID == "" {
		return nil, fmt.Errorf("reading is missing asset_id")
	}
	if msg.MeterType == "" {
		return nil, fmt.Errorf("reading is missing meter_type")
	}
	if msg.Timestamp == nil {
		now := time.Now().UTC()
		msg.Timestamp = &now
	}
	return &msg, nil
}
