package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:8080"
	userID  = "load-tester"
)

var positionBodies = []string{
	`{"product_id":71,"width":1000,"height":1000}`,
	`{"product_id":71,"width":3600,"height":1200}`,
	`{"product_id":71,"width":1200,"height":3600,"placement":"back"}`,
	`{"product_id":71,"width":0,"height":100}`,
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("0123456789abcdef")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	var req *http.Request
	switch rand.Intn(3) {
	case 0:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/orders?limit=10", nil)
	case 1:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/orders/"+randomID(32), nil)
	default:
		body := positionBodies[rand.Intn(len(positionBodies))]
		req, _ = http.NewRequest(http.MethodPost, baseURL+"/mockups/position", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-ID", userID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println(req.Method, req.URL.Path, "->", resp.Status)
	resp.Body.Close()
}
