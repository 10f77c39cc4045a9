// Package render serializes glyph-art documents into static HTML markup.
//
// What:
//
//   - HTML: each cell becomes an inline-styled span carrying its opacity and
//     font weight; row breaks become line breaks. One markup body, two
//     stylesheet branches: ModeDownload (static document) and ModePrint
//     (print-media stylesheet).
//   - StyleParams: viewport width (the font-size hint is viewport/columns),
//     output mode and document title.
//   - Present: hands the markup to a presentation Surface collaborator.
//     WriterSurface and FileSurface cover the common download targets.
//
// Failure mode:
//
//   - A Surface that cannot be opened (the reference's blocked print popup)
//     yields ErrPresentationUnavailable. The already-computed document is
//     never corrupted or discarded by a presentation failure.
//
// Errors:
//
//   - ErrNilDocument: export requested without a document.
//   - ErrPresentationUnavailable: the presentation surface refused to open.
package render
