package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type JobItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type JobShipping struct {
	Country string `json:"country"`
	Method  string `json:"method"`
}

type Subscription struct {
	PeriodDays int       `json:"period_days"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

type BillingJob struct {
	JobID           string       `json:"job_id"`
	CustomerID      int64        `json:"customer_id"`
	Items           []JobItem    `json:"items"`
	PaymentMethodID string       `json:"payment_method_id"`
	Currency        string       `json:"currency"`
	Shipping        JobShipping  `json:"shipping"`
	Subscription    Subscription `json:"subscription"`
}

var (
	countries = []string{"US", "DE", "GB", "FR"}
	methods   = []string{"standard", "next-day"}
)

func generateRandomJob() BillingJob {
	items := make([]JobItem, rand.Intn(3))
	for i := range items {
		items[i] = JobItem{
			ProductID: int64(rand.Intn(20) + 1),
			Quantity:  rand.Intn(4) + 1,
		}
	}

	starts := time.Now().UTC()
	return BillingJob{
		JobID:           uuid.NewString(),
		CustomerID:      int64(rand.Intn(100) + 1),
		Items:           items,
		PaymentMethodID: "pm_" + uuid.NewString()[:8],
		Currency:        "USD",
		Shipping: JobShipping{
			Country: countries[rand.Intn(len(countries))],
			Method:  methods[rand.Intn(len(methods))],
		},
		Subscription: Subscription{
			PeriodDays: 30,
			StartsAt:   starts,
			EndsAt:     starts.AddDate(1, 0, 0),
		},
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "billing-jobs",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			job := generateRandomJob()
			data, _ := json.Marshal(job)
			writer.WriteMessages(context.Background(), kafka.Message{
				Key:   []byte(job.JobID),
				Value: data,
			})
			log.Println("job generated", job.JobID)
		case <-ctx.Done():
			return
		}
	}
}
