package events

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewKafkaClient(t *testing.T) {
	tests := []struct {
		name        string
		brokersCSV  string
		wantBrokers []string
		wantEnabled bool
	}{
		{
			name:        "Empty",
			brokersCSV:  "",
			wantBrokers: []string{},
			wantEnabled: false,
		},
		{
			name:        "Single broker",
			brokersCSV:  "localhost:9092",
			wantBrokers: []string{"localhost:9092"},
			wantEnabled: true,
		},
		{
			name:        "Multiple brokers with spaces",
			brokersCSV:  "kafka-1:9092, kafka-2:9092 ,kafka-3:9092",
			wantBrokers: []string{"kafka-1:9092", "kafka-2:9092", "kafka-3:9092"},
			wantEnabled: true,
		},
		{
			name:        "Trailing comma",
			brokersCSV:  "localhost:9092,",
			wantBrokers: []string{"localhost:9092"},
			wantEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewKafkaClient(tt.brokersCSV)
			if !reflect.DeepEqual(client.Brokers, tt.wantBrokers) {
				t.Errorf("Expected brokers %v, got %v", tt.wantBrokers, client.Brokers)
			}
			if client.Enabled() != tt.wantEnabled {
				t.Errorf("Expected Enabled() = %v", tt.wantEnabled)
			}
		})
	}
}

// The downstream consumer contract depends on these exact field names.
func TestPaymentConfirmedMessageContract(t *testing.T) {
	data, err := json.Marshal(PaymentConfirmedMessage{
		StripePaymentID: "ch_1",
		OrderID:         "ord-1",
		ReceiptURL:      "https://r",
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"stripePaymentId":"ch_1","orderId":"ord-1","receiptUrl":"https://r"}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, string(data))
	}
}

func TestLogEmitter(t *testing.T) {
	emitter := NewLogEmitter()
	err := emitter.Emit(context.Background(), PaymentConfirmedMessage{
		StripePaymentID: "ch_1",
		OrderID:         "ord-1",
	})
	if err != nil {
		t.Errorf("Emit() error = %v", err)
	}
}
