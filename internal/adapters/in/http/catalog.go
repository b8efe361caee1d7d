package http

import (
	"net/http"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// One set of handlers serves every catalog resource. What a resource allows
// comes from its catalog.Policy.

// ListCatalogEntries handles GET /api/v1/catalog/{resource}.
func (s *Server) ListCatalogEntries(ctx echo.Context, resource servers.Resource) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListCatalogEntriesQuery(string(resource), actor)
	if err != nil {
		return s.problem(ctx, err)
	}
	entries, err := s.h.CatalogRead.List(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	response := make([]servers.CatalogEntry, len(entries))
	for i, e := range entries {
		response[i] = toCatalogEntry(query.Policy(), e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCatalogEntry handles GET /api/v1/catalog/{resource}/{entryId}.
func (s *Server) GetCatalogEntry(ctx echo.Context, resource servers.Resource, entryID servers.EntryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(entryID)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetCatalogEntryQuery(string(resource), id, actor)
	if err != nil {
		return s.problem(ctx, err)
	}
	entry, err := s.h.CatalogRead.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCatalogEntry(query.Policy(), entry))
}

// CreateCatalogEntry handles POST /api/v1/catalog/{resource}.
func (s *Server) CreateCatalogEntry(ctx echo.Context, resource servers.Resource) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateCatalogEntryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCatalogEntryCommand(string(resource), actor, body)
	if err != nil {
		return s.problem(ctx, err)
	}
	entry, err := s.h.CatalogWrite.Save(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toCatalogEntry(cmd.Policy(), entry))
}

// UpdateCatalogEntry handles PUT /api/v1/catalog/{resource}/{entryId}.
func (s *Server) UpdateCatalogEntry(ctx echo.Context, resource servers.Resource, entryID servers.EntryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(entryID)
	if err != nil {
		return s.problem(ctx, err)
	}

	var body servers.UpdateCatalogEntryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCatalogEntryCommand(string(resource), id, actor, body)
	if err != nil {
		return s.problem(ctx, err)
	}
	entry, err := s.h.CatalogWrite.Save(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCatalogEntry(cmd.Policy(), entry))
}

// DeleteCatalogEntry handles DELETE /api/v1/catalog/{resource}/{entryId}.
func (s *Server) DeleteCatalogEntry(ctx echo.Context, resource servers.Resource, entryID servers.EntryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(entryID)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewDeleteCatalogEntryCommand(string(resource), id, actor)
	if err != nil {
		return s.problem(ctx, err)
	}
	if err = s.h.CatalogWrite.Delete(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toCatalogEntry(p catalog.Policy, e *catalog.Entry) servers.CatalogEntry {
	return servers.CatalogEntry{
		Id:       e.ID().Bytes(),
		Owner:    e.Owner().Bytes(),
		Resource: p.Resource,
		Values:   e.Values(),
	}
}
