package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"paperbase/internal/config"
	"paperbase/internal/domain"
	"paperbase/internal/notifier"
	"paperbase/internal/pdf"
	"paperbase/internal/query"
	"paperbase/internal/service"
	"paperbase/internal/storage/sqlite"
)

const usage = `usage: paperbase [-config file] <command> [args]

commands:
  add <file> [title]       catalog one PDF and index it
  add-dir <dir>            catalog every PDF directly in dir (non-recursive)
  index [-all]             index unindexed articles (-all re-indexes everything)
  list [flags]             list articles (see 'list -h')
  search <text>            substring search over extracted page text
  stats                    catalog statistics
  group <add|update|rm|list> ...
  read <id> | unread <id>  toggle read state
  move <id> [group-id]     move article to a group (omit group-id to clear)
  rm <id>                  remove article and its page index
`

type app struct {
	articles *sqlite.ArticleStore
	groups   *sqlite.GroupStore
	pages    *sqlite.PageIndexStore
	catalog  *service.CatalogService
	indexer  *service.Indexer
	logger   *slog.Logger
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	db, err := sqlite.Open(cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var events service.Notifier
	if cfg.Notifier.Enabled {
		n, err := notifier.NewAMQP(notifier.Config{
			URL:        cfg.Notifier.URL,
			Exchange:   cfg.Notifier.Exchange,
			RoutingKey: cfg.Notifier.RoutingKey,
			QueueName:  cfg.Notifier.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer n.Close()
		events = n
	}

	opener := pdf.NewExtractor()

	articles := sqlite.NewArticleStore(db)
	pages := sqlite.NewPageIndexStore(db)

	a := &app{
		articles: articles,
		groups:   sqlite.NewGroupStore(db),
		pages:    pages,
		catalog:  service.NewCatalogService(articles, opener, events, logger),
		indexer:  service.NewIndexer(opener, pages, events, logger),
		logger:   logger,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := a.run(ctx, args[0], args[1:]); err != nil {
		logger.Error("command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "add":
		return a.cmdAdd(ctx, args)
	case "add-dir":
		return a.cmdAddDir(ctx, args)
	case "index":
		return a.cmdIndex(ctx, args)
	case "list":
		return a.cmdList(ctx, args)
	case "search":
		return a.cmdSearch(ctx, args)
	case "stats":
		return a.cmdStats(ctx)
	case "group":
		return a.cmdGroup(ctx, args)
	case "read":
		return a.cmdSetRead(ctx, args, true)
	case "unread":
		return a.cmdSetRead(ctx, args, false)
	case "move":
		return a.cmdMove(ctx, args)
	case "rm":
		return a.cmdRemove(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("add: missing file path")
	}
	title := ""
	if len(args) > 1 {
		title = args[1]
	}

	article, err := a.catalog.AddFile(ctx, args[0], title, nil)
	if errors.Is(err, domain.ErrDuplicatePath) {
		fmt.Printf("skipped: %s is already cataloged\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("added #%d %q (%d pages)\n", article.ID, article.Title, article.Pages)
	return a.runBatch(ctx, []domain.BatchItem{{ArticleID: article.ID, FilePath: article.FilePath}})
}

func (a *app) cmdAddDir(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("add-dir: missing folder path")
	}

	stats, items, err := a.catalog.AddFolder(ctx, args[0], nil)
	if err != nil {
		return err
	}
	fmt.Printf("import: %d added, %d skipped, %d failed\n", stats.Added, stats.Skipped, stats.Failed)

	if len(items) == 0 {
		return nil
	}
	return a.runBatch(ctx, items)
}

func (a *app) cmdIndex(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	all := fs.Bool("all", false, "re-index every article, not just unindexed ones")
	if err := fs.Parse(args); err != nil {
		return err
	}

	articles, err := a.articles.List(ctx, nil, "")
	if err != nil {
		return err
	}

	var items []domain.BatchItem
	for _, article := range articles {
		if !*all && article.IsIndexed {
			continue
		}
		items = append(items, domain.BatchItem{ArticleID: article.ID, FilePath: article.FilePath})
	}

	if len(items) == 0 {
		fmt.Println("nothing to index")
		return nil
	}
	return a.runBatch(ctx, items)
}

// runBatch submits one indexing batch and streams its progress. A SIGINT
// cancels the batch at the next item boundary; completed items stay committed.
func (a *app) runBatch(ctx context.Context, items []domain.BatchItem) error {
	batch, err := a.indexer.SubmitBatch(ctx, items)
	if err != nil {
		return err
	}

	for p := range batch.Progress() {
		status := "ok"
		if !p.OK {
			status = "FAILED"
		}
		fmt.Printf("[%d/%d] %s %s\n", p.Completed, p.Total, status, p.FilePath)
	}

	stats := batch.Wait()
	fmt.Printf("indexing done: %d succeeded, %d failed", stats.Succeeded, stats.Failed)
	if stats.Cancelled > 0 {
		fmt.Printf(", %d cancelled", stats.Cancelled)
	}
	fmt.Printf(" in %s\n", stats.Duration.Round(time.Millisecond))
	return nil
}

func (a *app) cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	groupID := fs.Int64("group", 0, "restrict to a group id")
	search := fs.String("search", "", "substring match against title or keywords")
	read := fs.String("read", "all", "read filter: all, read or unread")
	sortKey := fs.String("sort", "added", "sort key: added, title, pages or read")
	reverse := fs.Bool("reverse", false, "invert the sort order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	criteria := query.Criteria{Search: *search, Reverse: *reverse}
	if *groupID != 0 {
		criteria.GroupID = groupID
	}
	switch *read {
	case "all":
		criteria.Read = query.ReadAll
	case "read":
		criteria.Read = query.ReadOnly
	case "unread":
		criteria.Read = query.UnreadOnly
	default:
		return fmt.Errorf("list: unknown read filter %q", *read)
	}
	switch *sortKey {
	case "added":
		criteria.Sort = query.SortDateAdded
	case "title":
		criteria.Sort = query.SortTitle
	case "pages":
		criteria.Sort = query.SortPages
	case "read":
		criteria.Sort = query.SortRead
	default:
		return fmt.Errorf("list: unknown sort key %q", *sortKey)
	}

	snapshot, err := a.articles.List(ctx, nil, "")
	if err != nil {
		return err
	}

	articles := query.Apply(snapshot, criteria)
	for _, article := range articles {
		readMark := " "
		if article.IsRead {
			readMark = "r"
		}
		indexedMark := " "
		if article.IsIndexed {
			indexedMark = "i"
		}
		fmt.Printf("%5d [%s%s] %4dp  %s\n", article.ID, readMark, indexedMark, article.Pages, article.Title)
	}
	fmt.Printf("%d article(s)\n", len(articles))
	return nil
}

func (a *app) cmdSearch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("search: missing text")
	}

	matches, err := a.pages.Search(ctx, args[0])
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Printf("%s p.%d (#%d)\n", m.Title, m.PageNumber, m.ArticleID)
	}
	fmt.Printf("%d match(es)\n", len(matches))
	return nil
}

func (a *app) cmdStats(ctx context.Context) error {
	stats, err := a.articles.Statistics(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("articles: %d (%d read, %d indexed)\n",
		stats.TotalArticles, stats.ReadArticles, stats.IndexedArticles)
	fmt.Printf("pages:    %d (%d read)\n", stats.TotalPages, stats.PagesRead)
	return nil
}

func (a *app) cmdGroup(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("group: missing subcommand (add, update, rm, list)")
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("group add", flag.ContinueOnError)
		desc := fs.String("desc", "", "group description")
		color := fs.String("color", "", "display color")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return errors.New("group add: missing name")
		}
		id, err := a.groups.Add(ctx, &domain.Group{Name: fs.Arg(0), Description: *desc, Color: *color})
		if err != nil {
			return err
		}
		fmt.Printf("group #%d created\n", id)
		return nil

	case "update":
		fs := flag.NewFlagSet("group update", flag.ContinueOnError)
		desc := fs.String("desc", "", "group description")
		color := fs.String("color", "", "display color")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() < 2 {
			return errors.New("group update: need id and name")
		}
		id, err := parseID(fs.Arg(0))
		if err != nil {
			return err
		}
		return a.groups.Update(ctx, &domain.Group{ID: id, Name: fs.Arg(1), Description: *desc, Color: *color})

	case "rm":
		if len(args) < 2 {
			return errors.New("group rm: missing id")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return a.groups.Delete(ctx, id)

	case "list":
		groups, err := a.groups.List(ctx)
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("%5d %-24s %s  %s\n", g.ID, g.Name, g.Color, g.Description)
		}
		return nil

	default:
		return fmt.Errorf("group: unknown subcommand %q", args[0])
	}
}

func (a *app) cmdSetRead(ctx context.Context, args []string, read bool) error {
	if len(args) < 1 {
		return errors.New("missing article id")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if read {
		return a.articles.MarkRead(ctx, id)
	}
	return a.articles.MarkUnread(ctx, id)
}

func (a *app) cmdMove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("move: missing article id")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var groupID *int64
	if len(args) > 1 {
		gid, err := parseID(args[1])
		if err != nil {
			return err
		}
		groupID = &gid
	}
	return a.articles.MoveToGroup(ctx, id, groupID)
}

func (a *app) cmdRemove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("rm: missing article id")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.articles.Remove(ctx, id)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
