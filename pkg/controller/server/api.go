package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/normalizer"
	"github.com/C-S-I-FIIT/egis/pkg/utils/errutil"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

func handleListOrganizations(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgs, err := uc.ListOrganizations(r.Context())
		if err != nil {
			writeError(w, r, "fail to list organizations", err)
			return
		}
		if orgs == nil {
			orgs = []*model.Organization{}
		}
		writeJSON(w, http.StatusOK, orgs)
	}
}

type targetsResponse struct {
	Organization *model.Organization `json:"organization"`
	Targets      []model.Target      `json:"targets"`
}

func handleGetTargets(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, err := types.ParseOrganizationID(chi.URLParam(r, "orgID"))
		if err != nil {
			writeError(w, r, "invalid organization ID", err)
			return
		}

		org, targets, err := uc.ResolveOrganization(r.Context(), orgID)
		if err != nil {
			writeError(w, r, "fail to resolve organization", err)
			return
		}
		if targets == nil {
			targets = []model.Target{}
		}
		writeJSON(w, http.StatusOK, targetsResponse{Organization: org, Targets: targets})
	}
}

type assessmentRequest struct {
	OrgIDs []types.OrganizationID `json:"org_ids"`
}

type acceptedResponse struct {
	Status string                 `json:"status"`
	OrgIDs []types.OrganizationID `json:"org_ids"`
}

func (x *assessmentRequest) Validate() error {
	if len(x.OrgIDs) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "org_ids is required")
	}
	for _, id := range x.OrgIDs {
		if id <= 0 {
			return goerr.Wrap(types.ErrInvalidOption, "organization ID must be positive", goerr.V("org_id", id))
		}
	}
	return nil
}

func handleRunAssessments(uc interfaces.UseCase, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, "invalid request body", goerr.Wrap(types.ErrInvalidOption, "failed to decode request body", goerr.V("cause", err.Error())))
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, r, "invalid request", err)
			return
		}

		// The request context is cancelled when the response is sent
		bgCtx, cancel := DetachContext(r.Context(), timeout)
		go func() {
			defer cancel()
			runAssessments(bgCtx, uc, req.OrgIDs)
		}()

		writeJSON(w, http.StatusAccepted, acceptedResponse{Status: "accepted", OrgIDs: req.OrgIDs})
	}
}

func runAssessments(ctx context.Context, uc interfaces.UseCase, orgIDs []types.OrganizationID) {
	logger := logging.From(ctx)
	logger.Info("starting assessments", slog.Any("org_ids", orgIDs))

	reports, err := uc.RunAssessments(ctx, orgIDs)
	if err != nil {
		errutil.HandleError(ctx, "background assessments failed", err)
		return
	}
	logger.Info("assessments finished", slog.Int("reports", len(reports)))
}

func handleProcessExport(uc interfaces.UseCase, maxSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		meta := &model.ExportMetadata{
			ScanName: q.Get("scan_name"),
			JobID:    q.Get("job_id"),
			Schema:   q.Get("schema"),
			Format:   types.ExportFormatCSV,
		}
		if meta.Schema == "" {
			meta.Schema = normalizer.SchemaNessus
		}
		if f := q.Get("format"); f != "" {
			meta.Format = types.ExportFormat(f)
		}

		if v := q.Get("org_id"); v != "" {
			orgID, err := types.ParseOrganizationID(v)
			if err != nil {
				writeError(w, r, "invalid organization ID", err)
				return
			}
			org, targets, err := uc.ResolveOrganization(ctx, orgID)
			if err != nil {
				writeError(w, r, "fail to resolve organization", err)
				return
			}
			meta.Organization = org
			meta.Targets = targets
		}

		if err := meta.Validate(); err != nil {
			writeError(w, r, "invalid export metadata", err)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSize))
		if err != nil {
			writeError(w, r, "fail to read export", goerr.Wrap(types.ErrInvalidOption, "failed to read request body", goerr.V("cause", err.Error())))
			return
		}

		report, err := uc.ProcessExport(ctx, raw, meta)
		if err != nil {
			writeError(w, r, "fail to process export", err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}
