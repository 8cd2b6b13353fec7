package adlibraryclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	addomain "github.com/vfg2006/lead-radar-api/infrastructure/integrator/adlibrary/domain"
	"github.com/vfg2006/lead-radar-api/internal/config"
	"github.com/vfg2006/lead-radar-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tamanho de página da API de datasets do ator
const pageSize = 1000

type Client interface {
	ListDatasetItems(ctx context.Context) ([]addomain.DatasetItem, error)
}

type AdLibraryClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdLibraryClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ListDatasetItems percorre o dataset do ator página a página até esgotar
func (c *AdLibraryClient) ListDatasetItems(ctx context.Context) ([]addomain.DatasetItem, error) {
	items := make([]addomain.DatasetItem, 0)
	offset := 0

	for {
		page, err := c.listPage(ctx, offset)
		if err != nil {
			return nil, err
		}

		items = append(items, page...)

		if len(page) < pageSize {
			break
		}
		offset += pageSize
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id":  c.Cfg.AdLibrary.DatasetID,
		"total_items": len(items),
	}).Debug("adlibrary: dataset completo baixado")

	return items, nil
}

func (c *AdLibraryClient) listPage(ctx context.Context, offset int) ([]addomain.DatasetItem, error) {
	params := url.Values{}
	params.Add("token", c.Cfg.AdLibrary.Token)
	params.Add("format", "json")
	params.Add("limit", fmt.Sprintf("%d", pageSize))
	params.Add("offset", fmt.Sprintf("%d", offset))

	requestURL := fmt.Sprintf(
		"%s/v2/datasets/%s/items?%s",
		c.Cfg.AdLibrary.URL,
		c.Cfg.AdLibrary.DatasetID,
		params.Encode(),
	)

	data, err := utils.MakeRequest(ctx, c.httpClient, requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar página do dataset (offset %d): %w", offset, err)
	}

	var items []addomain.DatasetItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("erro ao decodificar página do dataset: %w", err)
	}

	return items, nil
}
