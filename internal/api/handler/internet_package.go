package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/internal/usecases/catalog"
	"github.com/zakcom/sales-tracker-api/pkg/apiErrors"
)

// ListPackages lista os pacotes do catálogo. Com ?active=true retorna
// apenas os pacotes disponíveis para venda.
func ListPackages(service catalog.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("active") == "true"

		packages, err := service.ListPackages(onlyActive)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pacotes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(packages); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetPackage retorna um pacote por ID
func GetPackage(service catalog.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := packageIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		pkg, err := service.GetPackage(id)
		if err != nil {
			if errors.Is(err, catalog.ErrPackageNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Pacote não encontrado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pacote", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pkg); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreatePackage cadastra um novo pacote no catálogo
func CreatePackage(service catalog.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePackage")

		var pkg *domain.InternetPackage
		if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		saved, err := service.CreatePackage(pkg)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, catalog.ErrMissingFields) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar pacote", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(saved); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdatePackage aplica uma atualização parcial a um pacote
func UpdatePackage(service catalog.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePackage")

		id, err := packageIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req domain.UpdateInternetPackageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = id

		pkg, err := service.UpdatePackage(&req)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, catalog.ErrPackageNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Pacote não encontrado", nil)
			case errors.Is(err, catalog.ErrMissingFields):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar pacote", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pkg); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeletePackage remove um pacote sem vendas associadas. Pacotes já vendidos
// devem ser inativados em vez de removidos.
func DeletePackage(service catalog.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePackage")

		id, err := packageIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := service.DeletePackage(id); err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, catalog.ErrPackageNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Pacote não encontrado", nil)
			case errors.Is(err, catalog.ErrPackageInUse):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Pacote possui vendas associadas, inative-o em vez de removê-lo", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover pacote", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func packageIDFromRequest(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		return 0, errors.New("ID do pacote não fornecido")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("ID do pacote inválido")
	}

	return id, nil
}
