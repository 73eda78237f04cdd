package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"mawasim/pkg/middleware"

	"github.com/joho/godotenv"
)

// Mints a stream token for debugging SSE endpoints with curl.
func main() {
	var channel string
	var subject string
	var minutes int

	flag.StringVar(&channel, "channel", "admin", "Stream channel (admin or merchant)")
	flag.StringVar(&subject, "subject", "", "Merchant id (merchant channel only)")
	flag.IntVar(&minutes, "ttl", 15, "Token lifetime in minutes")
	flag.Parse()

	godotenv.Load()

	secret := os.Getenv("STREAM_TOKEN_SECRET")
	if secret == "" {
		fmt.Println("Error: STREAM_TOKEN_SECRET is not set")
		os.Exit(1)
	}

	if channel != "admin" && channel != "merchant" {
		fmt.Println("Error: channel must be admin or merchant")
		os.Exit(1)
	}

	if channel == "merchant" && subject == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Enter merchant id: ")
		id, _ := reader.ReadString('\n')
		subject = strings.TrimSpace(id)
		if subject == "" {
			fmt.Println("Error: merchant channel needs a subject")
			os.Exit(1)
		}
	}

	token, err := middleware.IssueStreamToken(secret, channel, subject, time.Duration(minutes)*time.Minute)
	if err != nil {
		fmt.Printf("Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Channel : %s\n", channel)
	if subject != "" {
		fmt.Printf("Subject : %s\n", subject)
	}
	fmt.Printf("Expires : %s\n", time.Now().Add(time.Duration(minutes)*time.Minute).Format(time.RFC3339))
	fmt.Println("TOKEN (copy below line):")
	fmt.Println(token)
}
