// Package adlibrary integra com o ator de scraping da biblioteca de
// anúncios e converte o dataset cru para o modelo interno
package adlibrary

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/lead-radar-api/internal/config"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/pkg/utils"
)

type Integrator interface {
	FetchAds(ctx context.Context) ([]domain.AdRecord, error)
}

type AdLibraryIntegrator struct {
	cfg    *config.Config
	Client adlibraryclient.Client
}

func New(cfg *config.Config, client adlibraryclient.Client) *AdLibraryIntegrator {
	return &AdLibraryIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAds baixa o dataset corrente e o converte para registros internos.
// Itens sem identificador de anunciante são descartados com aviso, não
// derrubam a sincronização inteira.
func (s *AdLibraryIntegrator) FetchAds(ctx context.Context) ([]domain.AdRecord, error) {
	items, err := s.Client.ListDatasetItems(ctx)
	if err != nil {
		logrus.WithError(err).Error("adlibrary: falha ao baixar o dataset do ator")
		return nil, err
	}

	ads := make([]domain.AdRecord, 0, len(items))
	skipped := 0

	for _, item := range items {
		if item.PageID == "" {
			skipped++
			continue
		}

		ad := domain.AdRecord{
			AdID:               item.AdArchiveID,
			AdvertiserID:       item.PageID,
			AdvertiserName:     item.PageName,
			AdvertiserCategory: item.PageCategory,
			CTAType:            item.CTAType,
			DestinationURL:     item.LinkURL,
			Platforms:          item.PublisherPlatform,
			BodyText:           item.BodyText,
			Active:             item.IsActive,
			PagePopularity:     item.PageLikeCount,
		}

		startDate, err := utils.ParseDate(item.StartDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id": item.AdArchiveID,
				"value": item.StartDate,
			}).Warn("adlibrary: data de início ilegível, anúncio segue sem a data")
		} else {
			ad.StartDate = startDate
		}

		endDate, err := utils.ParseDate(item.EndDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id": item.AdArchiveID,
				"value": item.EndDate,
			}).Warn("adlibrary: data de término ilegível, anúncio segue sem a data")
		} else {
			ad.EndDate = endDate
		}

		ads = append(ads, ad)
	}

	if skipped > 0 {
		logrus.WithField("skipped_items", skipped).Warn("adlibrary: itens sem page_id descartados")
	}

	logrus.WithFields(logrus.Fields{
		"total_ads": len(ads),
	}).Info("adlibrary: dataset convertido para registros internos")

	return ads, nil
}
