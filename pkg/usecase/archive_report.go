package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
)

// archiveReport appends one row per finding to BigQuery. Without a BigQuery client it does nothing.
func (x *UseCase) archiveReport(ctx context.Context, findings []model.Finding, meta *model.ExportMetadata) error {
	bq := x.clients.BigQuery()
	if bq == nil || len(findings) == 0 {
		return nil
	}

	schema, schemaUpdated, err := createOrUpdateBigQueryTable(ctx, bq)
	if err != nil {
		return err
	}

	ts := scanTime(ctx, meta)
	targets := model.TargetIndex(meta.Targets)
	rows := make([]any, 0, len(findings))
	for i := range findings {
		f := &findings[i]
		var target *model.Target
		if t, ok := targets[f.HostIP]; ok {
			target = &t
		}
		rows = append(rows, model.NewFindingRecord(DocumentID(f), f, meta.Organization, types.ScanJobID(meta.JobID), target, ts))
	}

	if err := bq.Insert(ctx, schema, rows, interfaces.WithRetry(schemaUpdated)); err != nil {
		return goerr.Wrap(err, "failed to insert findings to BigQuery",
			goerr.V("scan_name", meta.ScanName),
			goerr.V("rows", len(rows)),
		)
	}

	logging.From(ctx).Info("findings archived to BigQuery", slog.Int("rows", len(rows)))
	return nil
}

// createOrUpdateBigQueryTable creates the table on first use and merges new columns into an existing one.
// schemaUpdated reports that the table schema was changed by this call.
func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(model.FindingRecord{})
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer finding record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if bqs.Equal(metaData.Schema, mergedSchema) {
		return mergedSchema, false, nil
	}

	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}
