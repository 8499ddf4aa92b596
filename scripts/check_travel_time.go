//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

type travelTimeRequest struct {
	StartLat float64 `json:"start_lat"`
	StartLon float64 `json:"start_lon"`
	EndLat   float64 `json:"end_lat"`
	EndLon   float64 `json:"end_lon"`
	Lang     int     `json:"lang"`
}

func main() {
	addr := flag.String("addr", "http://localhost:8000", "Gateway base URL")
	scope := flag.String("scope", "intercity", "intercity (POST body) or intracity (GET query)")
	startLat := flag.Float64("start-lat", 37.5, "Start latitude")
	startLon := flag.Float64("start-lon", 127.0, "Start longitude")
	endLat := flag.Float64("end-lat", 35.1, "End latitude")
	endLon := flag.Float64("end-lon", 129.0, "End longitude")
	lang := flag.Int("lang", 0, "Language code")
	flag.Parse()

	var req *http.Request
	var err error

	switch *scope {
	case "intercity":
		body, _ := json.Marshal(travelTimeRequest{*startLat, *startLon, *endLat, *endLon, *lang})
		req, err = http.NewRequest(http.MethodPost, *addr+"/travel-time", bytes.NewReader(body))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	case "intracity":
		q := url.Values{}
		q.Set("start_lat", fmt.Sprint(*startLat))
		q.Set("start_lon", fmt.Sprint(*startLon))
		q.Set("end_lat", fmt.Sprint(*endLat))
		q.Set("end_lon", fmt.Sprint(*endLon))
		q.Set("lang", fmt.Sprint(*lang))
		req, err = http.NewRequest(http.MethodGet, *addr+"/travel-time?"+q.Encode(), nil)
	default:
		log.Fatalf("Unknown scope %q", *scope)
	}
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	client := &http.Client{Timeout: 15 * time.Second}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	fmt.Printf("Request ID: %s\n", requestID)
	fmt.Printf("Status:     %d (%s)\n", resp.StatusCode, time.Since(start).Round(time.Millisecond))

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Printf("%s\n", raw)
		return
	}
	fmt.Printf("%s\n", pretty.String())
}
