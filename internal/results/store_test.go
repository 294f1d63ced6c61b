package results_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/internal/core/mocks"
	"github.com/zhulik/wildkmp/internal/results"
	"github.com/zhulik/wildkmp/pkg/series"
)

const resultName = "text_size_10_alphabet_size_2_magic_symbols_1__.txt"

var _ = Describe("Store", func() {
	var (
		resultsPath string
		uploader    *mocks.MockUploader
		store       *results.Store
		data        []series.Series
	)

	BeforeEach(func(ctx context.Context) {
		resultsPath = GinkgoT().TempDir()

		locker := mocks.NewMockLocker(GinkgoT())
		locker.EXPECT().Lock(mock.Anything, mock.Anything).RunAndReturn(
			func(ctx context.Context, _ string) (context.Context, context.CancelFunc, error) {
				return ctx, func() {}, nil
			},
		).Maybe()

		uploader = mocks.NewMockUploader(GinkgoT())

		store = &results.Store{
			Config:   &core.Config{ResultsPath: resultsPath},
			Locker:   locker,
			Uploader: uploader,
			Logger:   slog.New(slog.DiscardHandler),
		}
		Expect(store.Init(ctx)).To(Succeed())

		data = []series.Series{
			{{PatternLength: 2, Elapsed: 3 * time.Millisecond}, {PatternLength: 4, Elapsed: 5 * time.Millisecond}},
			{{PatternLength: 2, Elapsed: time.Millisecond}, {PatternLength: 4, Elapsed: 0}},
		}
	})

	It("creates the tmp folder", func() {
		Expect(filepath.Join(resultsPath, core.TmpFolder)).To(BeADirectory())
	})

	It("saves, uploads and lists a result", func(ctx context.Context) {
		run := lo.Must(store.StartRun(ctx))
		name := run.ID + "/" + resultName

		uploader.EXPECT().Upload(mock.Anything, name, filepath.Join(resultsPath, run.ID, resultName)).Return(nil)

		Expect(store.Save(ctx, run, resultName, data)).To(Succeed())
		Expect(run.Files).To(Equal([]string{resultName}))

		Expect(os.ReadFile(filepath.Join(resultsPath, run.ID, resultName))).To(Equal([]byte("2,3;4,5|2,1;4,0")))

		Expect(store.List(ctx, "*")).To(Equal([]string{name}))
		Expect(store.List(ctx, "*magic_symbols_1__*")).To(Equal([]string{name}))
		Expect(store.List(ctx, "*magic_symbols_2__*")).To(BeEmpty())

		Expect(store.Load(ctx, name)).To(Equal(data))
	})

	It("does not record the file when the upload fails", func(ctx context.Context) {
		run := lo.Must(store.StartRun(ctx))
		uploadErr := errors.New("bucket is gone")

		uploader.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything).Return(uploadErr)

		Expect(store.Save(ctx, run, resultName, data)).To(MatchError(uploadErr))
		Expect(run.Files).To(BeEmpty())
	})

	It("rejects unsafe file names", func(ctx context.Context) {
		run := lo.Must(store.StartRun(ctx))

		Expect(store.Save(ctx, run, "../escape.txt", data)).To(MatchError(core.ErrInvalidResult))
		Expect(store.Load(ctx, "../escape.txt")).Error().To(MatchError(core.ErrInvalidResult))
	})

	It("reports missing results", func(ctx context.Context) {
		Expect(store.Load(ctx, "nope/"+resultName)).Error().To(MatchError(core.ErrResultNotFound))
	})

	It("appends finished runs to the manifest", func(ctx context.Context) {
		Expect(store.Runs(ctx)).To(BeEmpty())

		first := lo.Must(store.StartRun(ctx))
		second := lo.Must(store.StartRun(ctx))
		first.Files = []string{resultName}

		Expect(store.Finish(ctx, first)).To(Succeed())
		Expect(store.Finish(ctx, second)).To(Succeed())

		runs := lo.Must(store.Runs(ctx))
		Expect(runs).To(HaveLen(2))
		Expect(runs[0].ID).To(Equal(first.ID))
		Expect(runs[0].Files).To(Equal([]string{resultName}))
		Expect(runs[0].StartedAt).To(BeTemporally("~", first.StartedAt, time.Second))
		Expect(runs[1].ID).To(Equal(second.ID))
		Expect(filepath.Join(resultsPath, core.ManifestFilename)).To(BeARegularFile())
	})
})
