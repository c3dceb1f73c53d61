package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-share-api/internal/application/ports"
	domainAudit "file-share-api/internal/domain/audit"
	domainFile "file-share-api/internal/domain/file"
	domainShare "file-share-api/internal/domain/share"
	domainUser "file-share-api/internal/domain/user"
	jwtSvc "file-share-api/internal/infrastructure/jwt"
)

type FakeFileService struct {
	CreateFilesFunc     func(ctx context.Context, ownerUUID domainUser.UUID, in []*multipart.FileHeader) (domainFile.Files, error)
	FindMyFilesFunc     func(ctx context.Context, ownerUUID domainUser.UUID) (domainFile.Files, error)
	FindSharedFilesFunc func(ctx context.Context, userUUID domainUser.UUID) (domainFile.Files, error)
	FindFileInfoFunc    func(ctx context.Context, fileUUID uuid.UUID) (*domainFile.File, error)
	DownloadFileFunc    func(ctx context.Context, fileUUID uuid.UUID, actorUUID domainUser.UUID, role domainShare.Role) (*domainFile.File, io.ReadCloser, error)
	DeleteFileFunc      func(ctx context.Context, fileUUID uuid.UUID, actorUUID domainUser.UUID) error
}

func (f *FakeFileService) CreateFiles(ctx context.Context, ownerUUID domainUser.UUID, in []*multipart.FileHeader) (domainFile.Files, error) {
	if f.CreateFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFilesFunc(ctx, ownerUUID, in)
}
func (f *FakeFileService) FindMyFiles(ctx context.Context, ownerUUID domainUser.UUID) (domainFile.Files, error) {
	if f.FindMyFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindMyFilesFunc(ctx, ownerUUID)
}
func (f *FakeFileService) FindSharedFiles(ctx context.Context, userUUID domainUser.UUID) (domainFile.Files, error) {
	if f.FindSharedFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindSharedFilesFunc(ctx, userUUID)
}
func (f *FakeFileService) FindFileInfo(ctx context.Context, fileUUID uuid.UUID) (*domainFile.File, error) {
	if f.FindFileInfoFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileInfoFunc(ctx, fileUUID)
}
func (f *FakeFileService) DownloadFile(ctx context.Context, fileUUID uuid.UUID, actorUUID domainUser.UUID, role domainShare.Role) (*domainFile.File, io.ReadCloser, error) {
	if f.DownloadFileFunc == nil {
		return nil, nil, errors.New("not used")
	}
	return f.DownloadFileFunc(ctx, fileUUID, actorUUID, role)
}
func (f *FakeFileService) DeleteFile(ctx context.Context, fileUUID uuid.UUID, actorUUID domainUser.UUID) error {
	if f.DeleteFileFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, fileUUID, actorUUID)
}

type FakeAuditService struct {
	FindFileAuditFunc func(ctx context.Context, fileUUID uuid.UUID) (domainAudit.Records, error)
}

func (f *FakeAuditService) FindFileAudit(ctx context.Context, fileUUID uuid.UUID) (domainAudit.Records, error) {
	if f.FindFileAuditFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileAuditFunc(ctx, fileUUID)
}

func newFileRouter(t *testing.T, fs ports.FileService, aus ports.AuditService, as ports.AccessService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	j := jwtSvc.New("test-secret")

	NewFileController(r, logger, fs, aus, as, j)
	return r
}

func doUploadReq(t *testing.T, r *gin.Engine, fileNames []string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for _, name := range fileNames {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, _ = fw.Write([]byte("content of " + name))
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, RouteFileUpload, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestFileController_UploadHandler(t *testing.T) {
	actorUUID := uuid.New()

	tests := []struct {
		name       string
		fileNames  []string
		headers    map[string]string
		mockFS     func() ports.FileService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing Authorization",
			fileNames:  []string{"doc.pdf"},
			headers:    nil,
			mockFS:     func() ports.FileService { return &FakeFileService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 no files",
			fileNames:  nil,
			headers:    ownerAuth(t, actorUUID),
			mockFS:     func() ports.FileService { return &FakeFileService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "at least one file is required",
		},
		{
			name:      "201 success",
			fileNames: []string{"a.txt", "b.txt"},
			headers:   ownerAuth(t, actorUUID),
			mockFS: func() ports.FileService {
				return &FakeFileService{
					CreateFilesFunc: func(ctx context.Context, ownerUUID domainUser.UUID, in []*multipart.FileHeader) (domainFile.Files, error) {
						require.Len(t, in, 2)
						return domainFile.Files{
							{UUID: uuid.New(), OriginalName: "a.txt"},
							{UUID: uuid.New(), OriginalName: "b.txt"},
						}, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newFileRouter(t, tt.mockFS(), &FakeAuditService{}, &FakeAccessService{})
			rr := doUploadReq(t, r, tt.fileNames, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestFileController_DownloadHandler_StreamsWithResolvedRole(t *testing.T) {
	actorUUID := uuid.New()
	fileUUID := uuid.New()

	fs := &FakeFileService{
		DownloadFileFunc: func(ctx context.Context, id uuid.UUID, actor domainUser.UUID, role domainShare.Role) (*domainFile.File, io.ReadCloser, error) {
			require.Equal(t, domainShare.RoleViewer, role)
			body := "file-bytes"
			f := &domainFile.File{
				UUID:         id,
				OriginalName: "report.pdf",
				FileType:     "application/pdf",
				SizeBytes:    uint64(len(body)),
			}
			return f, io.NopCloser(strings.NewReader(body)), nil
		},
	}

	r := newFileRouter(t, fs, &FakeAuditService{}, roleFixture(domainShare.RoleViewer))
	rr := doJSONReq(t, r, http.MethodGet, RouteApiV1+"/files/"+fileUUID.String()+"/download", nil, ownerAuth(t, actorUUID))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "file-bytes", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "report.pdf")
}

func TestFileController_DownloadHandler_NoRoleIsForbidden(t *testing.T) {
	actorUUID := uuid.New()

	r := newFileRouter(t, &FakeFileService{}, &FakeAuditService{}, roleFixture(domainShare.RoleNone))
	rr := doJSONReq(t, r, http.MethodGet, RouteApiV1+"/files/"+uuid.New().String()+"/download", nil, ownerAuth(t, actorUUID))

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestFileController_TokenDownload(t *testing.T) {
	actorUUID := uuid.New()
	fileUUID := uuid.New()

	tests := []struct {
		name       string
		mockAS     func() ports.AccessService
		wantStatus int
	}{
		{
			name: "404 expired or unknown token",
			mockAS: func() ports.AccessService {
				return &FakeAccessService{
					ResolveTokenRoleFunc: func(ctx context.Context, actorUUID domainUser.UUID, token string) (*domainShare.TokenAccess, error) {
						return nil, domainShare.ErrShareNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "200 valid token streams",
			mockAS: func() ports.AccessService {
				return &FakeAccessService{
					ResolveTokenRoleFunc: func(ctx context.Context, actorUUID domainUser.UUID, token string) (*domainShare.TokenAccess, error) {
						return &domainShare.TokenAccess{FileID: 10, FileUUID: fileUUID, Role: domainShare.RoleViewer}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			fs := &FakeFileService{
				DownloadFileFunc: func(ctx context.Context, id uuid.UUID, actor domainUser.UUID, role domainShare.Role) (*domainFile.File, io.ReadCloser, error) {
					require.Equal(t, fileUUID, id)
					return &domainFile.File{UUID: id, OriginalName: "x.txt", SizeBytes: 4},
						io.NopCloser(strings.NewReader("data")), nil
				},
			}

			r := newFileRouter(t, fs, &FakeAuditService{}, tt.mockAS())
			rr := doJSONReq(t, r, http.MethodGet, RouteApiV1+"/files/share/tok-abc/download", nil, ownerAuth(t, actorUUID))
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestFileController_GetAuditHandler_OwnerOnly(t *testing.T) {
	actorUUID := uuid.New()
	fileUUID := uuid.New()

	tests := []struct {
		name       string
		role       domainShare.Role
		wantStatus int
	}{
		{"owner reads the trail", domainShare.RoleOwner, http.StatusOK},
		{"viewer is rejected", domainShare.RoleViewer, http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			aus := &FakeAuditService{
				FindFileAuditFunc: func(ctx context.Context, id uuid.UUID) (domainAudit.Records, error) {
					return domainAudit.Records{
						{Action: domainAudit.ActionUpload, Role: domainShare.RoleOwner, ActorUsername: "alice", CreatedAt: time.Now()},
						{Action: domainAudit.ActionDownload, Role: domainShare.RoleViewer, ActorUsername: "bob", CreatedAt: time.Now()},
					}, nil
				},
			}

			r := newFileRouter(t, &FakeFileService{}, aus, roleFixture(tt.role))
			rr := doJSONReq(t, r, http.MethodGet, RouteApiV1+"/files/"+fileUUID.String()+"/audit", nil, ownerAuth(t, actorUUID))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				var resp map[string][]map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Len(t, resp["data"], 2)
				assert.Equal(t, "upload", resp["data"][0]["action"])
			}
		})
	}
}

func TestFileController_DeleteFileHandler(t *testing.T) {
	actorUUID := uuid.New()
	fileUUID := uuid.New()

	tests := []struct {
		name       string
		mockFS     func() ports.FileService
		wantStatus int
	}{
		{
			name: "403 not the owner",
			mockFS: func() ports.FileService {
				return &FakeFileService{
					DeleteFileFunc: func(ctx context.Context, id uuid.UUID, actor domainUser.UUID) error {
						return domainShare.ErrAccessDenied
					},
				}
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "404 unknown file",
			mockFS: func() ports.FileService {
				return &FakeFileService{
					DeleteFileFunc: func(ctx context.Context, id uuid.UUID, actor domainUser.UUID) error {
						return domainFile.ErrFileNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "200 deleted",
			mockFS: func() ports.FileService {
				return &FakeFileService{
					DeleteFileFunc: func(ctx context.Context, id uuid.UUID, actor domainUser.UUID) error {
						return nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newFileRouter(t, tt.mockFS(), &FakeAuditService{}, &FakeAccessService{})
			rr := doJSONReq(t, r, http.MethodDelete, RouteApiV1+"/files/"+fileUUID.String(), nil, ownerAuth(t, actorUUID))
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
