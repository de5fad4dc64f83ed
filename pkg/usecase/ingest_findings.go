package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const documentIDSeparator = "\x1f"

// DocumentID is the identity of a finding in the document store. Equal (host, plugin, port, scan name) give equal IDs.
func DocumentID(f *model.Finding) string {
	h := sha256.New()
	for i, part := range []string{f.HostIP, f.PluginID, strconv.Itoa(f.Port), f.ScanName} {
		if i > 0 {
			h.Write([]byte(documentIDSeparator))
		}
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IndexName returns the monthly index for the time, e.g. "egis-vulnerabilities-2024.05"
func IndexName(prefix string, t time.Time) string {
	return prefix + "-" + t.UTC().Format("2006.01")
}

// scanTime is the time a batch is filed under; using the scan time keeps re-processing of one export in one index
func scanTime(ctx context.Context, meta *model.ExportMetadata) time.Time {
	switch {
	case !meta.EndTime.IsZero():
		return meta.EndTime
	case !meta.StartTime.IsZero():
		return meta.StartTime
	default:
		return logging.CtxTime(ctx)
	}
}

// buildDocuments converts findings into documents, collapsing findings with the same ID.
// The last occurrence wins and CVEs and references of all occurrences are merged.
func buildDocuments(findings []model.Finding, meta *model.ExportMetadata, ts time.Time) []*model.FindingDocument {
	targets := model.TargetIndex(meta.Targets)

	var org *model.DocumentOrganization
	if meta.Organization != nil {
		org = &model.DocumentOrganization{ID: meta.Organization.ID, Name: meta.Organization.Name}
	}

	docs := make([]*model.FindingDocument, 0, len(findings))
	pos := make(map[string]int, len(findings))

	for i := range findings {
		f := &findings[i]
		doc := &model.FindingDocument{
			ID:        DocumentID(f),
			Timestamp: ts,
			Host: model.DocumentHost{
				IP:       f.HostIP,
				Port:     f.Port,
				Protocol: f.Protocol,
			},
			Vulnerability: model.DocumentVulnerability{
				PluginID:      f.PluginID,
				Name:          f.PluginName,
				Severity:      f.Severity,
				SeverityLevel: int(f.Severity),
				CVSSv2:        f.CVSSv2,
				CVSSv3:        f.CVSSv3,
				CVEs:          f.CVEs,
				Synopsis:      f.Synopsis,
				Description:   f.Description,
				Solution:      f.Solution,
				References:    f.References,
				PluginOutput:  f.PluginOutput,
			},
			Scan: model.DocumentScan{
				Name:      f.ScanName,
				JobID:     meta.JobID,
				StartTime: meta.StartTime,
				EndTime:   meta.EndTime,
			},
			Organization: org,
		}

		if t, ok := targets[f.HostIP]; ok {
			doc.Host.DNSName = t.DNSName
			doc.Host.Description = t.Description
			doc.Host.Device = t.DeviceMetadata
		}

		if idx, ok := pos[doc.ID]; ok {
			prev := docs[idx]
			doc.Vulnerability.CVEs = mergeList(prev.Vulnerability.CVEs, doc.Vulnerability.CVEs)
			doc.Vulnerability.References = mergeList(prev.Vulnerability.References, doc.Vulnerability.References)
			docs[idx] = doc
			continue
		}

		pos[doc.ID] = len(docs)
		docs = append(docs, doc)
	}

	return docs
}

func mergeList(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			merged = append(merged, v)
		}
	}
	return merged
}

// IngestFindings upserts the findings into the document store in one bulk request. Per-document failures are
// returned in the summary and are not an error; the caller decides whether partial success is acceptable.
// It does not retry. Without a document store it returns nil.
func (x *UseCase) IngestFindings(ctx context.Context, findings []model.Finding, meta *model.ExportMetadata) (*model.IngestSummary, error) {
	store := x.clients.DocumentStore()
	if store == nil {
		logging.From(ctx).Debug("document store is not configured, skip ingestion")
		return nil, nil
	}

	ts := scanTime(ctx, meta)
	index := IndexName(x.indexPrefix, ts)
	docs := buildDocuments(findings, meta, ts)

	summary := &model.IngestSummary{Index: index}
	if len(docs) == 0 {
		return summary, nil
	}

	result, err := store.BulkUpsert(ctx, index, docs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert findings",
			goerr.V("index", index),
			goerr.V("count", len(docs)),
			goerr.V("scan_name", meta.ScanName),
		)
	}

	summary.Succeeded = result.Succeeded
	summary.Failed = result.Failed

	logger := logging.From(ctx)
	if err := result.Err(); err != nil {
		logger.Warn("some findings were not persisted",
			slog.String("index", index),
			slog.Int("succeeded", len(summary.Succeeded)),
			slog.Int("failed", len(summary.Failed)),
			slog.Any("error", err),
		)
	} else {
		logger.Info("findings ingested",
			slog.String("index", index),
			slog.Int("documents", len(summary.Succeeded)),
		)
	}

	return summary, nil
}
