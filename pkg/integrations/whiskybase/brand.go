package whiskybase

import (
	"encoding/json"
	"net/url"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/pkg/model"
)

type BrandJSON struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     struct {
		AddressCountry string `json:"addressCountry"`
		AddressRegion  string `json:"addressRegion"`
	} `json:"address"`
}

type BrandScraped struct {
	Link    string `attr:"href"      selector:"a.name"`
	Name    string `selector:"a.name"`
	Country string `selector:".country"`
}

type BrandContent struct {
	Name        string `selector:"h1"`
	Country     string `selector:".brand-country"`
	Region      string `selector:".brand-region"`
	Description string `selector:".brand-description"`
}

type scrapeResult struct {
	index int
	brand model.Brand
	err   error
}

// FindBrand searches the catalogue and fetches every matching brand page.
// Results keep the order of the search listing.
func (w *WhiskybaseIntegration) FindBrand(name string) ([]model.Brand, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(w.baseURL.Hostname()),
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs    error
		scraped []BrandScraped
	)

	collector.OnHTML(".brand-item", func(element *colly.HTMLElement) {
		item := BrandScraped{}

		err := element.Unmarshal(&item)
		if multierr.AppendInto(&errs, err) {
			w.logger.Error("failed to unmarshal scraped brand", zap.Error(err))

			return
		}

		if item.Link == "" {
			return
		}

		w.logger.Info("successfully scraped item from results", zap.String("name", item.Name), zap.String("link", item.Link))
		scraped = append(scraped, item)
	})

	collector.OnError(func(response *colly.Response, err error) {
		w.logger.Error("error while scraping brand search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	w.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(w.resolve("/search?q="+url.QueryEscape(name)+"&type=brands")))

	var brandWG sync.WaitGroup

	brandChan := make(chan scrapeResult, len(scraped))

	for index, item := range scraped {
		brandWG.Add(1)

		go func() {
			defer brandWG.Done()

			brandChan <- w.getBrandData(collector.Clone(), index, item)
		}()
	}

	brandWG.Wait()
	close(brandChan)

	results := make([]model.Brand, len(scraped))
	found := make([]bool, len(scraped))

	for result := range brandChan {
		if multierr.AppendInto(&errs, result.err) {
			continue
		}

		results[result.index] = result.brand
		found[result.index] = true
	}

	brands := make([]model.Brand, 0, len(scraped))

	for index, brand := range results {
		if found[index] {
			brands = append(brands, brand)
		}
	}

	w.logger.Info("finished scraping query results", zap.Int("results", len(brands)), zap.Error(errs))

	return brands, errs
}

func (w *WhiskybaseIntegration) getBrandData(detailCollector *colly.Collector, index int, item BrandScraped) scrapeResult {
	brand := model.Brand{
		Name:    strings.TrimSpace(item.Name),
		Country: strings.TrimSpace(item.Country),
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var brandJSON BrandJSON
		if err := json.Unmarshal([]byte(element.Text), &brandJSON); err != nil {
			return
		}

		w.logger.Info("successfully scraped brand from JSON data", zap.String("name", brandJSON.Name))

		brand.Name = valueOr(brandJSON.Name, brand.Name)
		brand.Description = valueOr(brandJSON.Description, brand.Description)
		brand.Country = valueOr(brandJSON.Address.AddressCountry, brand.Country)
		brand.Region = valueOr(brandJSON.Address.AddressRegion, brand.Region)
	})

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		content := BrandContent{}
		if err := element.Unmarshal(&content); err != nil {
			return
		}

		if brand.Name == "" {
			brand.Name = strings.TrimSpace(content.Name)
		}

		if brand.Country == "" {
			brand.Country = strings.TrimSpace(content.Country)
		}

		if brand.Region == "" {
			brand.Region = strings.TrimSpace(content.Region)
		}

		if brand.Description == "" {
			brand.Description = strings.TrimSpace(content.Description)
		}
	})

	w.logger.Info("scraping brand page", zap.String("link", item.Link))

	err := detailCollector.Visit(w.resolve(item.Link))

	return scrapeResult{index: index, brand: brand, err: err}
}

func valueOr(value string, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}

	return fallback
}
