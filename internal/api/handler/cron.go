package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/scheduler"
	"github.com/vfg2006/lead-radar-api/pkg/apiErrors"
	"github.com/vfg2006/lead-radar-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAdLibrary = "adlibrary"
	CronJobTypePipeline  = "pipeline"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AdLibrarySyncService *scheduler.AdLibrarySyncService
	PipelineRunService   *scheduler.PipelineRunService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeAdLibrary:
			// Executar sincronização do dataset de anúncios
			if services.AdLibrarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do dataset não disponível", nil)
				return
			}
			services.AdLibrarySyncService.TriggerManualSync()

		case CronJobTypePipeline:
			// Executar o pipeline de scoring
			if services.PipelineRunService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do pipeline de scoring não disponível", nil)
				return
			}
			services.PipelineRunService.TriggerManualRun()

		case CronJobTypeAll:
			// Executar ambas as rotinas
			if services.AdLibrarySyncService != nil {
				services.AdLibrarySyncService.TriggerManualSync()
			}
			if services.PipelineRunService != nil {
				services.PipelineRunService.TriggerManualRun()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: adlibrary, pipeline, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"adlibrary": services.AdLibrarySyncService.GetStatus(),
			"pipeline":  services.PipelineRunService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
