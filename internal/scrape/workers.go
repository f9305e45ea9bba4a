package scrape

import (
	"log/slog"
	"regexp"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ziink4/Jerk/pkg/specpage"
)

// progressEvery controls how often the collector logs a progress line.
const progressEvery = 100

// pageNamePattern pulls the page slug out of a spec URL: the part
// between the final slash and the file extension.
var pageNamePattern = regexp.MustCompile(`.+/(.+)\..+`)

func pageName(url string) string {
	m := pageNamePattern.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return m[1]
}

// PageSource fetches and parses one page. Satisfied by fetcher.Fetcher.
type PageSource interface {
	GetDocument(url string) (*goquery.Document, error)
}

// run fans the URL list out over workerCount workers and collects
// results as they complete. The returned slice is therefore in
// completion order, not input order; one result is produced per URL no
// matter how many pages fail.
func run(logger *slog.Logger, source PageSource, extractor *specpage.Extractor, urls []string, workerCount int) []Result {
	logger.Info("Starting concurrent scrape phase", "url_count", len(urls), "workers", workerCount)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, source, extractor, &wg, jobs, results)
	}

	for _, rawURL := range urls {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	allResults := make([]Result, 0, len(urls))
	for result := range results {
		allResults = append(allResults, result)
		if len(allResults)%progressEvery == 0 || len(allResults) == len(urls) {
			logger.Info("Progress", "completed", len(allResults), "total", len(urls))
		}
	}

	logger.Info("All scrape workers finished")
	return allResults
}

// worker processes jobs until the channel drains. A failed page is
// reported as a Result with its error attached; it never takes the pool
// down with it.
func worker(id int, logger *slog.Logger, source PageSource, extractor *specpage.Extractor, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		name := pageName(job.URL)
		logger.Debug("Worker started job", "worker_id", id, "page", name, "url", job.URL)
		result := Result{URL: job.URL, PageName: name}

		doc, err := source.GetDocument(job.URL)
		if err != nil {
			logger.Error("Error fetching page", "worker_id", id, "url", job.URL, "error", err)
			result.Error = err
			result.ErrorType = "fetch_error"
			results <- result
			continue
		}

		record := extractor.Extract(job.URL, doc)
		result.Record = &record
		results <- result
		logger.Debug("Worker finished job", "worker_id", id, "page", name)
	}
}
