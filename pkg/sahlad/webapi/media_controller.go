package webapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/fstore"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

type MediaController struct {
	stors     *stor.Stors
	fileStore *fstore.LocalStore
}

func NewMediaController(stors *stor.Stors, fileStore *fstore.LocalStore) *MediaController {
	return &MediaController{stors: stors, fileStore: fileStore}
}

// UploadMedia accepts a multipart "file" field plus entity_type/entity_id
// form fields, stores the bytes and records the media row.
func (c *MediaController) UploadMedia(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "file field is required"))
	}

	entityType := ctx.FormValue("entity_type")
	entityID, err := strconv.Atoi(ctx.FormValue("entity_id"))
	if err != nil || entityType == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "entity_type and entity_id are required"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	contents, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	fileURL, err := c.fileStore.Store(contents, fileHeader.Filename)
	if err != nil {
		return err
	}

	media, err := c.stors.MediaFileStor.CreateMediaFile(&smodel.MediaFile{
		OwnerID:    user.ID,
		EntityType: entityType,
		EntityID:   entityID,
		FileURL:    fileURL,
		FileType:   fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, media)
}

func (c *MediaController) ListMedia(ctx echo.Context) error {
	entityID, err := strconv.Atoi(ctx.Param("entity_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	media, err := c.stors.MediaFileStor.ListMediaForEntity(ctx.Param("entity_type"), entityID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, media)
}

// DeleteMedia removes the stored file and tombstones the row. Owner or staff
// only.
func (c *MediaController) DeleteMedia(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	media, err := c.stors.MediaFileStor.GetMediaFileByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if media.OwnerID != user.ID && !user.IsStaff {
		return jsonError(ctx, service.ErrForbidden)
	}

	if media.FileURL != "" {
		if err := c.fileStore.Delete(media.FileURL); err != nil {
			return err
		}
	}

	if err := c.stors.MediaFileStor.SoftDeleteMediaFile(id); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
