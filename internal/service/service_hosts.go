// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/internal/resolver"
	"github.com/MKhiriev/hostkeys/internal/store"
	"github.com/MKhiriev/hostkeys/internal/validators"
	"github.com/MKhiriev/hostkeys/internal/workers"
	"github.com/MKhiriev/hostkeys/models"
)

type hostService struct {
	reader    store.SettingsReader
	identity  string
	pool      *workers.Pool
	validator validators.Validator

	logger *logger.Logger
}

// NewHostService returns a HostService reading from reader. Hosts are
// resolved on pool; results keep the store's index order.
func NewHostService(reader store.SettingsReader, identity string, pool *workers.Pool, logger *logger.Logger) HostService {
	return &hostService{
		reader:    reader,
		identity:  identity,
		pool:      pool,
		validator: validators.NewSecretValidator(models.SecretLength),
		logger:    logger,
	}
}

func (s *hostService) ListHosts(ctx context.Context) models.HostListing {
	log := logger.FromContext(ctx)

	listing := models.HostListing{
		Identity: s.identity,
		Backend:  s.reader.Backend(),
		Hosts:    []models.HostReport{},
	}

	n := s.reader.ReadArrayLength(ctx, models.RegisteredHostsSection)
	if n < 0 || n > store.MaxArrayLength {
		log.Warn().
			Str("func", "hostService.ListHosts").
			Str("backend", listing.Backend).
			Int("size", n).
			Msg("array size out of range, treating the store as empty")
		n = 0
	}
	if n == 0 {
		log.Info().
			Str("func", "hostService.ListHosts").
			Str("identity", s.identity).
			Str("backend", listing.Backend).
			Msg("no registered hosts found")
		return listing
	}

	log.Debug().
		Str("func", "hostService.ListHosts").
		Int("hosts", n).
		Int("concurrency", s.pool.Concurrency()).
		Msg("resolving registered hosts")

	hosts := workers.Run(ctx, s.pool, n, s.resolveHost)
	if len(hosts) < n {
		log.Warn().
			Err(ctx.Err()).
			Str("func", "hostService.ListHosts").
			Int("resolved", len(hosts)).
			Int("hosts", n).
			Msg("host resolution interrupted")
	}
	listing.Hosts = append(listing.Hosts, hosts...)
	return listing
}

// resolveHost reads one array entry. The MAC is reported as raw hex and
// does not go through the resolver.
func (s *hostService) resolveHost(ctx context.Context, index int) models.HostReport {
	section := models.RegisteredHostsSection

	record := models.HostRecord{
		Index:        index,
		Nickname:     s.reader.ReadField(ctx, section, index, models.FieldNickname).String(),
		MAC:          s.reader.ReadField(ctx, section, index, models.FieldMAC).Bytes,
		RegistSecret: resolver.ResolveSecret(s.reader.ReadField(ctx, section, index, models.FieldRegistKey)),
		Secret:       resolver.ResolveSecret(s.reader.ReadField(ctx, section, index, models.FieldKey)),
	}

	return models.NewHostReport(record,
		s.classify(ctx, index, models.FieldRegistKey, record.RegistSecret),
		s.classify(ctx, index, models.FieldKey, record.Secret),
	)
}

func (s *hostService) classify(ctx context.Context, index int, field string, secret models.DecodedSecret) models.SecretReport {
	err := s.validator.Validate(ctx, secret, field)
	status := validators.SecretStatus(err)

	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "hostService.classify").
			Int("host", index).
			Str("provenance", secret.Provenance.String()).
			Msg("secret is not usable as is")
	}

	report := models.SecretReport{
		Field:      field,
		Status:     status,
		Provenance: secret.Provenance,
		Length:     secret.Len(),
	}
	if status != models.SecretMissing {
		report.Hex = secret.Hex()
	}

	return report
}
