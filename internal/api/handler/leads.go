package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/internal/usecases/prospecting"
	"github.com/vfg2006/lead-radar-api/pkg/apiErrors"
)

// GetLeadsRanking retorna o ranking de anunciantes ordenado por score
func GetLeadsRanking(service prospecting.ProspectingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseLimit(r, 0)

		ranking, err := service.GetRanking(limit)
		if err != nil {
			logrus.Error("Erro ao buscar ranking de anunciantes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de anunciantes", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ranking)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetLeadDetail retorna o perfil pontuado de um anunciante
func GetLeadDetail(service prospecting.ProspectingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if advertiserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante não fornecido", nil)
			return
		}

		advertiser, err := service.GetAdvertiser(advertiserID)
		if err != nil {
			if errors.Is(err, prospecting.ErrAdvertiserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Anunciante não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar anunciante:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar anunciante", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(advertiser)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do anunciante:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetPipelineRuns lista as execuções recentes do pipeline
func GetPipelineRuns(service prospecting.ProspectingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseLimit(r, 20)

		runs, err := service.ListRuns(limit)
		if err != nil {
			logrus.Error("Erro ao listar execuções do pipeline:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções do pipeline", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(runs)
		if err != nil {
			logrus.Error("Erro ao enviar resposta das execuções:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return fallback
	}

	return limit
}
