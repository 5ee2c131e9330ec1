package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type Address struct {
	Zip string `json:"zip"`
}

type Order struct {
	OrderNumber     int       `json:"order_number"`
	Customer        *Customer `json:"customer,omitempty"`
	Email           string    `json:"email,omitempty"`
	CreatedAt       string    `json:"created_at"`
	ShippingAddress *Address  `json:"shipping_address,omitempty"`
}

var (
	firstNames = []string{"Jane", "Tom", "Amelia", "Oliver", "Isla"}
	lastNames  = []string{"Smith", "Jones", "Taylor", "Brown", "Wilson"}
	postcodes  = []string{"SW1A 1AA", "M1 1AE", "B33 8TH", "CR2 6XH", "DN55 1PT"}
)

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

// каждый пятый заказ оформлен без аккаунта
func generateRandomOrder(number int) Order {
	email := fmt.Sprintf("buyer%d@example.com", rand.Intn(1000))
	order := Order{
		OrderNumber:     number,
		CreatedAt:       time.Now().Format(time.RFC3339),
		ShippingAddress: &Address{Zip: pick(postcodes)},
	}

	if number%5 == 0 {
		order.Email = email
		return order
	}

	order.Customer = &Customer{
		FirstName: pick(firstNames),
		LastName:  pick(lastNames),
		Email:     email,
	}
	return order
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ",")...),
		Topic: env("KAFKA_TOPIC", "orders"),
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	number := 1000 + rand.Intn(1000)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			number++
			order := generateRandomOrder(number)
			data, _ := json.Marshal(order)
			msg := kafka.Message{Key: []byte(fmt.Sprint(order.OrderNumber)), Value: data}
			if err := writer.WriteMessages(ctx, msg); err != nil {
				log.Println("failed to write order", err)
				continue
			}
			log.Println("order generated", order.OrderNumber)
		case <-ctx.Done():
			return
		}
	}
}
