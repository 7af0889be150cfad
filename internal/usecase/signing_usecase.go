package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"albaranes/internal/domain/entities"
	"albaranes/internal/usecase/interfaces"
)

var (
	ErrNoteAlreadySigned = errors.New("delivery note already signed")
	ErrNoteNotSigned     = errors.New("delivery note not signed")
	ErrEmptySignature    = errors.New("empty signature image")
)

// SignStage identifies which step of the signing pipeline failed, so
// callers can decide between retrying FinishSigning and re-running Sign.
type SignStage string

const (
	StageSignatureUpload SignStage = "signature_upload"
	StageSignatureCommit SignStage = "signature_commit"
	StageDocumentRender  SignStage = "document_render"
	StagePDFUpload       SignStage = "pdf_upload"
	StagePDFCommit       SignStage = "pdf_commit"
)

// SignStageError wraps an upstream failure with the pipeline stage and
// note it occurred on. Retryable marks network/timeout-class failures;
// content-class failures (an unrenderable view) are permanent.
//
// Failures at StageDocumentRender or later leave the note signed without
// a pdf_url, a legal intermediate state resumable via FinishSigning.
type SignStageError struct {
	Stage     SignStage
	NoteID    string
	Retryable bool
	Err       error
}

func (e *SignStageError) Error() string {
	return fmt.Sprintf("signing stage %s failed for note %s: %v", e.Stage, e.NoteID, e.Err)
}

func (e *SignStageError) Unwrap() error {
	return e.Err
}

// ISigningUseCase owns the two-phase signature commit: anchoring the
// signature image, conditionally flipping the note to signed, rendering
// the document and anchoring it. It also serves on-demand PDF rendering.

type ISigningUseCase interface {
	Sign(ctx context.Context, id string, image []byte, filename, contentType string) (entities.SignResult, error)
	FinishSigning(ctx context.Context, id string) (entities.SignResult, error)
	RenderPDF(ctx context.Context, id string) (pdf []byte, filename string, err error)
}

type SigningUseCase struct {
	repo      interfaces.IDeliveryNoteRepository
	directory interfaces.IPartyDirectory
	blobs     interfaces.IBlobStore
	renderer  interfaces.IDocumentRenderer
}

var _ ISigningUseCase = (*SigningUseCase)(nil)

func NewSigningUseCase(
	repo interfaces.IDeliveryNoteRepository,
	directory interfaces.IPartyDirectory,
	blobs interfaces.IBlobStore,
	renderer interfaces.IDocumentRenderer,
) *SigningUseCase {
	return &SigningUseCase{repo: repo, directory: directory, blobs: blobs, renderer: renderer}
}

// Sign runs the full pipeline. Stage 1 mutates nothing, so its failure
// aborts cleanly. Stage 2 is the point of no return: from there the note
// is signed and only the document stages remain, which FinishSigning can
// re-run. An orphaned signature blob from a stage-2 abort is acceptable;
// the store is content-addressed and re-uploads converge on the same key.
func (u *SigningUseCase) Sign(ctx context.Context, id string, image []byte, filename, contentType string) (entities.SignResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SignResult{}, ErrInvalidNoteID
	}
	if len(image) == 0 {
		return entities.SignResult{}, ErrEmptySignature
	}
	log.Printf("[sign][usecase] pipeline start note_id=%s image_len=%d", id, len(image))

	// Stage 1: anchor the signature image.
	signRef, err := u.blobs.Put(ctx, image, filename, contentType)
	if err != nil {
		log.Printf("[sign][usecase] signature upload failed note_id=%s err=%v", id, err)
		return entities.SignResult{}, &SignStageError{Stage: StageSignatureUpload, NoteID: id, Retryable: true, Err: err}
	}

	// Stage 2: provisional commit, conditional on the note still pending.
	note, err := u.repo.CommitSignature(ctx, id, signRef.URL)
	if err != nil {
		log.Printf("[sign][usecase] signature commit failed note_id=%s err=%v", id, err)
		return entities.SignResult{}, &SignStageError{Stage: StageSignatureCommit, NoteID: id, Retryable: true, Err: err}
	}
	if note.ID == "" {
		// Condition failed: tell the loser whether the note is gone or
		// was signed by a concurrent winner.
		current, gerr := u.repo.GetByID(ctx, id)
		if gerr != nil {
			return entities.SignResult{}, &SignStageError{Stage: StageSignatureCommit, NoteID: id, Retryable: true, Err: gerr}
		}
		if current.ID == "" {
			return entities.SignResult{}, ErrNoteNotFound
		}
		log.Printf("[sign][usecase] lost sign race note_id=%s", id)
		return entities.SignResult{}, ErrNoteAlreadySigned
	}
	log.Printf("[sign][usecase] note signed note_id=%s sign_url=%s", note.ID, signRef.URL)

	// Stages 3-4.
	final, err := u.finishDocument(ctx, note)
	if err != nil {
		return entities.SignResult{}, err
	}

	log.Printf("[sign][usecase] pipeline success note_id=%s", final.ID)
	return entities.SignResult{Note: final, SignURL: final.Sign, PDFURL: final.PDFURL}, nil
}

// FinishSigning re-runs the document stages for a note stuck in the
// signed-without-PDF state. It is idempotent: a note that already carries
// a pdf_url is returned as-is, and the signature is never re-uploaded.
func (u *SigningUseCase) FinishSigning(ctx context.Context, id string) (entities.SignResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SignResult{}, ErrInvalidNoteID
	}

	note, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SignResult{}, err
	}
	if note.ID == "" {
		return entities.SignResult{}, ErrNoteNotFound
	}
	if note.Pending {
		return entities.SignResult{}, ErrNoteNotSigned
	}
	if note.PDFURL != "" {
		return entities.SignResult{Note: note, SignURL: note.Sign, PDFURL: note.PDFURL}, nil
	}
	log.Printf("[sign][usecase] resuming document stages note_id=%s", id)

	final, err := u.finishDocument(ctx, note)
	if err != nil {
		return entities.SignResult{}, err
	}
	return entities.SignResult{Note: final, SignURL: final.Sign, PDFURL: final.PDFURL}, nil
}

// finishDocument runs stages 3-4 against an already-signed note. Any
// failure here leaves the note signed without a pdf_url; I2 holds
// throughout because pdf_url is only committed after a successful upload.
func (u *SigningUseCase) finishDocument(ctx context.Context, note entities.DeliveryNote) (entities.DeliveryNote, error) {
	view, err := resolveView(ctx, u.directory, note)
	if err != nil {
		log.Printf("[sign][usecase] view resolution failed note_id=%s err=%v", note.ID, err)
		return entities.DeliveryNote{}, &SignStageError{Stage: StageDocumentRender, NoteID: note.ID, Retryable: true, Err: err}
	}

	// Stage 3: render.
	pdf, err := u.renderer.Render(view)
	if err != nil {
		log.Printf("[sign][usecase] render failed note_id=%s err=%v", note.ID, err)
		return entities.DeliveryNote{}, &SignStageError{Stage: StageDocumentRender, NoteID: note.ID, Retryable: isTimeout(err), Err: err}
	}

	// Stage 4: anchor the document and commit its URL.
	pdfRef, err := u.blobs.Put(ctx, pdf, pdfFilename(note.ID), "application/pdf")
	if err != nil {
		log.Printf("[sign][usecase] pdf upload failed note_id=%s err=%v", note.ID, err)
		return entities.DeliveryNote{}, &SignStageError{Stage: StagePDFUpload, NoteID: note.ID, Retryable: true, Err: err}
	}

	final, err := u.repo.SetPDFURL(ctx, note.ID, pdfRef.URL)
	if err != nil {
		log.Printf("[sign][usecase] pdf commit failed note_id=%s err=%v", note.ID, err)
		return entities.DeliveryNote{}, &SignStageError{Stage: StagePDFCommit, NoteID: note.ID, Retryable: true, Err: err}
	}
	if final.ID == "" {
		return entities.DeliveryNote{}, &SignStageError{Stage: StagePDFCommit, NoteID: note.ID, Retryable: false, Err: ErrNoteNotFound}
	}
	log.Printf("[sign][usecase] pdf anchored note_id=%s pdf_url=%s", final.ID, pdfRef.URL)
	return final, nil
}

// RenderPDF renders the current state of a note on demand, signed or not.
func (u *SigningUseCase) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, "", ErrInvalidNoteID
	}

	note, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if note.ID == "" {
		return nil, "", ErrNoteNotFound
	}

	view, err := resolveView(ctx, u.directory, note)
	if err != nil {
		return nil, "", &SignStageError{Stage: StageDocumentRender, NoteID: id, Retryable: true, Err: err}
	}
	pdf, err := u.renderer.Render(view)
	if err != nil {
		return nil, "", &SignStageError{Stage: StageDocumentRender, NoteID: id, Retryable: isTimeout(err), Err: err}
	}
	return pdf, pdfFilename(id), nil
}

func pdfFilename(id string) string {
	return fmt.Sprintf("albaran_%s.pdf", id)
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
