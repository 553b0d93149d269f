// Package fxrates fetches daily exchange rate tables from a public FX
// endpoint, with a disk cache and an offline fallback: when the endpoint is
// unreachable, the last table successfully fetched for that base is served
// with its Fallback flag raised. Valuations keep working, flagged stale.
package fxrates

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/folio-app/folio"
)

// endpoint serves the daily base-relative rate table, one path segment per
// base currency.
const endpoint = "https://open.er-api.com/v6/latest/"

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the key embeds today's date, so the local cache expires every day
	key := fmt.Sprintf("%s %s %s", folio.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a cache all with daily expire
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// Service fetches rate tables and remembers the last good one per base.
type Service struct {
	client *http.Client
	store  string // directory for fallback tables, empty disables persistence
}

// NewService returns a service backed by the daily-expiring HTTP cache and a
// per-user fallback store.
func NewService() *Service {
	store, err := os.UserCacheDir()
	if err != nil {
		store = os.TempDir()
	}
	return &Service{
		client: daily(),
		store:  filepath.Join(store, "folio"),
	}
}

// Fetch returns today's rate table for the base currency. When the endpoint
// cannot be reached or parsed, the last good table for that base is returned
// with Fallback set; with no fallback available either, the error is
// returned and the caller can still value with an empty, fail-open table.
func (s *Service) Fetch(base string) (folio.RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return folio.RateTable{}, fmt.Errorf("base currency is missing")
	}

	var jobj any
	if err := jwget(s.client, endpoint+base, &jobj); err != nil {
		return s.fallback(base, fmt.Errorf("cannot fetch rates for %q: %w", base, err))
	}

	table, err := parseTable(jobj, base)
	if err != nil {
		return s.fallback(base, err)
	}

	s.remember(table)
	return table, nil
}

// parseTable extracts the rate map from the decoded endpoint response.
func parseTable(jobj any, base string) (folio.RateTable, error) {
	jval, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return folio.RateTable{}, fmt.Errorf("no rates in response for %q: %w", base, err)
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return folio.RateTable{}, fmt.Errorf("rates for %q are not an object", base)
	}

	table := folio.RateTable{
		Base:      base,
		Rates:     make(map[string]decimal.Decimal, len(jrates)),
		FetchedAt: time.Now(),
	}
	for code, jrate := range jrates {
		rate, ok := jrate.(float64)
		if !ok || rate == 0 {
			continue // unusable rates are simply absent: conversion fails open
		}
		table.Rates[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
	}
	if len(table.Rates) == 0 {
		return folio.RateTable{}, fmt.Errorf("empty rate table for %q", base)
	}
	return table, nil
}

// remember persists the table as the fallback for its base.
func (s *Service) remember(table folio.RateTable) {
	if s.store == "" {
		return
	}
	if err := os.MkdirAll(s.store, 0755); err != nil {
		log.Printf("fallback write err (ignored): %v", err)
		return
	}
	data, err := json.Marshal(table)
	if err != nil {
		log.Printf("fallback write err (ignored): %v", err)
		return
	}
	file := filepath.Join(s.store, "rates-"+table.Base+".json")
	if err := os.WriteFile(file, data, 0644); err != nil {
		log.Printf("fallback write err (ignored): %v", err)
	}
}

// fallback serves the last good table for the base, flagged stale. The fetch
// error is returned when no fallback exists.
func (s *Service) fallback(base string, cause error) (folio.RateTable, error) {
	if s.store == "" {
		return folio.RateTable{}, cause
	}
	file := filepath.Join(s.store, "rates-"+base+".json")
	data, err := os.ReadFile(file)
	if err != nil {
		return folio.RateTable{}, cause
	}
	var table folio.RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return folio.RateTable{}, cause
	}
	log.Printf("rates for %q unavailable, using fallback from %s: %v", base, table.FetchedAt.Format("2006-01-02"), cause)
	table.Fallback = true
	return table, nil
}
