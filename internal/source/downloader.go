package source

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (compatible; CrimeObservatory/1.0)"

// Downloader загружает файлы статистики по HTTP
type Downloader struct {
	client *resty.Client
}

// NewDownloader создает загрузчик с таймаутом и повторами
func NewDownloader(timeout time.Duration) *Downloader {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,*/*")
	return &Downloader{client: client}
}

// Download возвращает тело ответа; статус не 2xx считается ошибкой
func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("download %s: unexpected status %d", url, resp.StatusCode())
	}
	return resp.Body(), nil
}
