package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/hamed0406/sharewatch/internal/domain"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}
	key := os.Getenv("ADMIN_API_KEY")

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter a site URL to monitor (e.g., https://example.com): ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		fmt.Println("Invalid URL.")
		return
	}

	targets, err := fetchTargets(api, key)
	if err != nil {
		fmt.Println("Could not fetch current targets:", err)
		return
	}

	for _, w := range targets.Websites {
		if w.URL == raw {
			fmt.Println("Already monitored.")
			return
		}
	}
	targets.Websites = append(targets.Websites, domain.WebsiteTarget{URL: raw})

	if err := putTargets(api, key, targets); err != nil {
		fmt.Println("Update failed:", err)
		return
	}
	fmt.Printf("Now monitoring %d websites and %d file shares.\n",
		len(targets.Websites), len(targets.Stores))
}

func fetchTargets(api, key string) (domain.TargetSet, error) {
	var ts domain.TargetSet
	req, _ := http.NewRequest(http.MethodGet, api+"/api/targets", nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ts, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ts, fmt.Errorf("status %d", resp.StatusCode)
	}
	return ts, json.NewDecoder(resp.Body).Decode(&ts)
}

func putTargets(api, key string, ts domain.TargetSet) error {
	b, err := json.Marshal(ts)
	if err != nil {
		return err
	}
	req, _ := http.NewRequest(http.MethodPut, api+"/api/targets", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
