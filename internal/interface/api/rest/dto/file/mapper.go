package file

import (
	"file-share-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	return File{
		UUID:         fDomain.UUID,
		OriginalName: fDomain.OriginalName,
		FileType:     fDomain.FileType,
		SizeBytes:    fDomain.SizeBytes,
		CreatedAt:    fDomain.CreatedAt,
		OwnerName:    fDomain.OwnerName,
		SharedAt:     fDomain.SharedAt,
	}
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
