package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/portalempleos/secureupload/pkg/logger"
	"github.com/portalempleos/secureupload/pkg/upload"
)

// S3Storage implements Storage using S3-compatible object storage.
type S3Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	chain     *upload.Chain
	log       *slog.Logger
	cfg       Config
	location  string
	acl       ACL
	overwrite bool
}

// NewMedia creates storage for user uploads: private ACL, no overwrites,
// and every Put validated by the given chain before any storage I/O.
func NewMedia(cfg Config, chain *upload.Chain, log *slog.Logger) (*S3Storage, error) {
	if chain == nil {
		return nil, ErrNilChain
	}
	s, err := newS3(cfg, LocationMedia, ACLPrivate, false)
	if err != nil {
		return nil, err
	}
	s.chain = chain
	if log != nil {
		s.log = log
	}
	return s, nil
}

// NewStatic creates storage for site assets: public-read ACL, overwrites
// allowed, no upload validation.
func NewStatic(cfg Config) (*S3Storage, error) {
	return newS3(cfg, LocationStatic, ACLPublicRead, true)
}

func newS3(cfg Config, location string, acl ACL, overwrite bool) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	client := s3.New(s3.Options{}, opts...)

	return &S3Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		log:       logger.NewNope(),
		cfg:       cfg,
		location:  location,
		acl:       acl,
		overwrite: overwrite,
	}, nil
}

// Put uploads content under the given filename. On the media profile the
// content is validated first; a rejection aborts before anything is
// written. Accepted uploads are stored with attachment disposition,
// no-store cache headers, and server-side encryption.
func (s *S3Storage) Put(ctx context.Context, r io.ReadSeeker, name string, size int64, opts ...Option) (*FileInfo, error) {
	o := &putOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if s.chain != nil {
		f := &upload.File{
			Reader:      r,
			Name:        name,
			ContentType: o.contentType,
			Size:        size,
		}
		if err := s.chain.Validate(f); err != nil {
			return nil, err
		}
	}

	contentType, err := s.resolveContentType(r, name, o.contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	key := o.key
	if key == "" {
		key = objectName(name, contentType)
	}
	key = s.location + "/" + key

	if !s.overwrite {
		key, err = s.availableKey(ctx, key)
		if err != nil {
			return nil, err
		}
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
		ACL:         s.cannedACL(),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if s.chain != nil {
		// Security metadata for validated user uploads: force download,
		// forbid caching, encrypt at rest.
		input.ContentDisposition = aws.String("attachment")
		input.CacheControl = aws.String(cacheControlNoStore)
		input.ServerSideEncryption = types.ServerSideEncryptionAes256
	} else {
		input.CacheControl = aws.String(cacheControlStatic)
		input.StorageClass = types.StorageClassStandardIa
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return nil, wrapS3Error(err, ErrUploadFailed)
	}

	s.log.Info("file stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("size", size))

	return &FileInfo{
		Key:         key,
		ContentType: contentType,
		ACL:         s.acl,
		Size:        size,
	}, nil
}

// Get retrieves a file from S3.
func (s *S3Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrNotFound)
	}
	return output.Body, nil
}

// Delete removes a file from S3.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return wrapS3Error(err, ErrDeleteFailed)
	}
	return nil
}

// URL generates a URL for accessing the file. Public-read profiles get a
// public/CDN URL; private profiles get a presigned GET URL.
func (s *S3Storage) URL(ctx context.Context, key string, opts ...URLOption) (string, error) {
	o := &urlOptions{
		expiry: s.cfg.SignedURLExpiry,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.forcePublic || (s.acl == ACLPublicRead && o.downloadName == "") {
		return s.publicURL(key), nil
	}

	return s.signedURL(ctx, key, o)
}

// resolveContentType determines the stored content type: caller-declared,
// guessed from the filename extension, then sniffed from content.
func (s *S3Storage) resolveContentType(r io.ReadSeeker, name, declared string) (string, error) {
	if declared != "" {
		return declared, nil
	}
	if ct := upload.MIMEByExtension(fileExt(name)); ct != "" {
		return ct, nil
	}
	ct, err := upload.DetectContentType(r)
	if err != nil {
		return "", err
	}
	if ct == "" {
		ct = upload.MIMEOctetStream
	}
	return ct, nil
}

// availableKey returns a key that does not collide with an existing
// object, appending a short unique suffix before the extension when
// needed. Mirrors the no-overwrite behavior of the original media storage.
func (s *S3Storage) availableKey(ctx context.Context, key string) (string, error) {
	for {
		_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(s.cfg.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			wrapped := wrapS3Error(err, ErrUploadFailed)
			if errors.Is(wrapped, ErrNotFound) {
				return key, nil
			}
			return "", wrapped
		}

		suffix := uuid.NewString()[:8]
		if dot := strings.LastIndex(key, "."); dot > strings.LastIndex(key, "/") {
			key = key[:dot] + "_" + suffix + key[dot:]
		} else {
			key = key + "_" + suffix
		}
	}
}

// cannedACL maps the profile ACL to the SDK type.
func (s *S3Storage) cannedACL() types.ObjectCannedACL {
	if s.acl == ACLPublicRead {
		return types.ObjectCannedACLPublicRead
	}
	return types.ObjectCannedACLPrivate
}

// publicURL generates a public URL for the file, preferring the configured
// CDN domain.
func (s *S3Storage) publicURL(key string) string {
	if s.cfg.CustomDomain != "" {
		return fmt.Sprintf("https://%s/%s", strings.TrimSuffix(s.cfg.CustomDomain, "/"), key)
	}

	if s.cfg.Endpoint != "" {
		endpoint := strings.TrimSuffix(s.cfg.Endpoint, "/")
		if s.cfg.PathStyle {
			return fmt.Sprintf("%s/%s/%s", endpoint, s.cfg.Bucket, key)
		}
		return fmt.Sprintf("%s/%s", endpoint, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

// signedURL generates a presigned GET URL for the file.
func (s *S3Storage) signedURL(ctx context.Context, key string, opts *urlOptions) (string, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}

	if opts.downloadName != "" {
		disposition := fmt.Sprintf("attachment; filename=%q", opts.downloadName)
		input.ResponseContentDisposition = aws.String(disposition)
	}

	result, err := s.presigner.PresignGetObject(ctx, input, func(po *s3.PresignOptions) {
		po.Expires = opts.expiry
	})
	if err != nil {
		return "", wrapS3Error(err, ErrPresignFailed)
	}

	return result.URL, nil
}

// keySegmentRegex matches characters that are not safe in object keys.
var keySegmentRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// objectName builds a safe object name from the submitted filename,
// generating a unique one when the name is empty or sanitizes to nothing.
func objectName(name, contentType string) string {
	name = strings.Trim(name, " /\\")
	name = strings.ReplaceAll(name, "..", "")
	name = keySegmentRegex.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")

	if name == "" {
		ext := upload.ExtensionByMIME(contentType)
		if ext == "" {
			ext = "bin"
		}
		return uuid.NewString() + "." + ext
	}
	return name
}

// fileExt extracts the lowercase extension from a filename, without the
// leading dot.
func fileExt(name string) string {
	if dot := strings.LastIndex(name, "."); dot >= 0 && dot < len(name)-1 {
		return strings.ToLower(name[dot+1:])
	}
	return ""
}

// Ensure S3Storage implements Storage.
var _ Storage = (*S3Storage)(nil)
