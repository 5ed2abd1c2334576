// Package storage provides S3-compatible object storage with upload
// validation.
//
// Two storage profiles mirror how the application serves files:
//
//   - Media: user uploads. Private ACL, never overwrites existing keys,
//     and every write first passes the upload validation chain. Accepted
//     files are stored with attachment disposition, no-cache headers, and
//     server-side encryption.
//   - Static: site assets. Public-read ACL, overwrites allowed, long-lived
//     cache headers, no validation.
//
// # Basic Usage
//
//	cfg := storage.Config{
//		Bucket:    "portalempleos-prod",
//		Region:    "mx-central-1",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	}
//
//	chain := upload.NewChain(rules, log)
//	media, err := storage.NewMedia(cfg, chain, log)
//	if err != nil {
//		return err
//	}
//
//	fh, _ := c.FormFile("resume")
//	info, err := storage.PutFile(ctx, media, fh)
//	if err != nil {
//		var secErr *upload.SecurityError
//		if errors.As(err, &secErr) {
//			// Rejected by the security scan; nothing was written.
//		}
//	}
//
// Validation happens entirely before any storage I/O, so a rejected file
// never results in a partial write.
//
// # URL Generation
//
//	// CDN or virtual-hosted S3 URL for public objects.
//	url, err := static.URL(ctx, info.Key, storage.WithPublic())
//
//	// Presigned GET URL with download disposition for private objects.
//	url, err := media.URL(ctx, info.Key, storage.WithDownload("resume.pdf"))
package storage
