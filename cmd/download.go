package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brogergvhs/se8/internal/chapters"
	"github.com/brogergvhs/se8/internal/config"
	"github.com/brogergvhs/se8/internal/downloader"
	"github.com/brogergvhs/se8/internal/providers"
	"github.com/brogergvhs/se8/internal/providers/se8"
	"github.com/brogergvhs/se8/internal/ui"
	"github.com/brogergvhs/se8/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	// selection
	flagChapter string
	flagRange   string
	flagList    string

	// runtime
	flagOutput         string
	flagImageWorkers   int
	flagChapterWorkers int
	flagKeepFolders    bool
	flagDryRun         bool
	flagSkipBroken     bool
	flagNoComicInfo    bool
)

func init() {
	downloadCmd := &cobra.Command{
		Use:   "download <series-id>",
		Short: "Download chapters of a series as CBZ files. Uses the defaults from the selected config, overwritten by CLI flags",
		Args:  cobra.ExactArgs(1),
		RunE:  runDownload,
	}

	// selection
	downloadCmd.Flags().StringVar(&flagChapter, "chapter", "", "download single chapter by number, id or position (e.g. 5)")
	downloadCmd.Flags().StringVar(&flagRange, "range", "", "download range of chapters by position (e.g. 5-12)")
	downloadCmd.Flags().StringVar(&flagList, "list", "", "download specific chapter positions (e.g. 1,3,5)")

	// runtime
	downloadCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for CBZ files")
	downloadCmd.Flags().IntVar(&flagImageWorkers, "image-workers", 5, "parallel image downloads per chapter")
	downloadCmd.Flags().IntVar(&flagChapterWorkers, "chapter-workers", 2, "parallel chapter downloads")
	downloadCmd.Flags().BoolVar(&flagKeepFolders, "keep-folders", false, "keep temporary folders")
	downloadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be downloaded, don’t download")
	downloadCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "skip failed images instead of failing the whole chapter")
	downloadCmd.Flags().BoolVar(&flagNoComicInfo, "no-comicinfo", false, "do not embed ComicInfo.xml")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	seriesID := args[0]

	s, err := openSession(config.Options{
		Output:       flagOutput,
		KeepFolders:  flagKeepFolders,
		DefaultRange: flagRange,
		DefaultList:  flagList,
		SkipBroken:   flagSkipBroken,
	})
	if err != nil {
		return err
	}
	cfg := s.cfg

	if cmd.Flags().Changed("image-workers") {
		cfg.ImageWorkers = max(1, flagImageWorkers)
	}
	if cmd.Flags().Changed("chapter-workers") {
		cfg.ChapterWorkers = max(1, flagChapterWorkers)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config file: %s\n", s.usedPath)
	fmt.Fprintln(out, "Full config:")
	cfg.Print(out)
	fmt.Fprintln(out)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	manga, err := s.source.Detail(ctx, seriesID)
	if err != nil {
		return err
	}

	raw, err := s.source.Chapters(ctx, seriesID)
	if err != nil {
		return err
	}

	all := chapters.Wrap(manga.Title, raw)
	sel := chapters.Selection{One: flagChapter, Range: cfg.DefaultRange, List: cfg.DefaultList}
	if sel.Empty() {
		fmt.Fprintf(out, "Found %d chapters of %s.\n\n", len(all), manga.Title)
	}

	selected, err := sel.Apply(all)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no chapters selected")
	}

	if flagDryRun {
		fmt.Fprintf(out, "Dry-run: %d chapters selected.\n\n", len(selected))
		for i, ch := range selected {
			fmt.Fprintf(out, "%3d) %s  [%s]\n    %s\n", i+1, ch.Title, ch.Label, ch.OutputCBZ())
		}
		return nil
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	stop := util.SetupInterruptHandler(cfg.Output, cancel)
	defer stop()

	pm := ui.NewProgressManager(os.Stderr)
	stats := ui.NewStats()
	dl := downloader.New(s.client, s.log, cfg.SkipBroken)

	s.log.Infof("Downloading %d chapters of %s to %s\n", len(selected), manga.Title, cfg.Output)

	g := new(errgroup.Group)
	g.SetLimit(max(1, cfg.ChapterWorkers))

	for _, ch := range selected {
		g.Go(func() error {
			if err := downloadChapter(ctx, s, dl, pm, manga, ch, stats); err != nil {
				stats.Failed.Add(1)
				s.log.Errorf("Chapter %s (%s) failed: %v\n", ch.Label, ch.Title, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	pm.Close()

	stats.Summary(out, util.Human)

	if n := stats.Failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d chapters failed", n, len(selected))
	}

	fmt.Fprintln(out, "\nAll done.")
	return nil
}

func downloadChapter(
	ctx context.Context,
	s *session,
	dl *downloader.Downloader,
	pm *ui.ProgressManager,
	manga providers.Manga,
	ch chapters.Chapter,
	stats *ui.Stats,
) error {
	cfg := s.cfg

	pages, err := s.source.Pages(ctx, manga.ID, ch.ID)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no images on reader page")
	}

	for i := range pages {
		pages[i].URL = util.Resolve(cfg.BaseURL, pages[i].URL)
	}

	referer := se8.ReaderURL(cfg.BaseURL, ch.ID)
	if ch.URL != "" {
		referer = util.Resolve(cfg.BaseURL, ch.URL)
	}

	handle := pm.Register("Ch." + ch.Label)

	tmpFolder := filepath.Join(cfg.Output, ch.FolderName())
	cbzOut := ch.OutputCBZPath(cfg.Output)

	files, bytes, err := dl.DownloadPages(ctx, pages, tmpFolder, referer, cfg.ImageWorkers, handle)
	if err != nil {
		_ = os.RemoveAll(tmpFolder)
		return err
	}
	if len(files) == 0 {
		_ = os.RemoveAll(tmpFolder)
		return fmt.Errorf("no pages downloaded")
	}
	if skipped := len(pages) - len(files); skipped > 0 {
		s.log.Warnf("Ch.%s: skipped %d of %d broken pages\n", ch.Label, skipped, len(pages))
	}

	var info *util.ComicInfo
	if !flagNoComicInfo {
		info = comicInfo(manga, ch, len(files))
	}

	if err := util.CreateCBZ(files, cbzOut, info); err != nil {
		_ = os.RemoveAll(tmpFolder)
		return fmt.Errorf("CBZ: %w", err)
	}

	if !cfg.KeepFolders {
		util.CleanupFolder(tmpFolder)
	}

	s.log.Debugf("Wrote %s\n", cbzOut)

	stats.AddChapter(len(files), bytes)

	return nil
}

func comicInfo(m providers.Manga, ch chapters.Chapter, pages int) *util.ComicInfo {
	return &util.ComicInfo{
		Series:      m.Title,
		Title:       ch.Title,
		Number:      strconv.Itoa(ch.Position),
		Writer:      m.Author,
		Genre:       strings.Join(m.Categories, ", "),
		Summary:     m.Description,
		Web:         m.URL,
		PageCount:   pages,
		LanguageISO: "zh",
		AgeRating:   ageRating(m.ContentRating),
		Manga:       "Yes",
	}
}

func ageRating(r providers.ContentRating) string {
	switch r {
	case providers.RatingNsfw:
		return "Adults Only 18+"
	case providers.RatingSuggestive:
		return "Teen"
	default:
		return "Everyone"
	}
}
