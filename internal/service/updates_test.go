package service_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/cek-notifier/internal/dal"
	"github.com/Roma7-7-7/cek-notifier/internal/dal/testutil"
	"github.com/Roma7-7-7/cek-notifier/internal/observability"
	"github.com/Roma7-7-7/cek-notifier/internal/parser"
	"github.com/Roma7-7-7/cek-notifier/internal/providers"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
	"github.com/Roma7-7-7/cek-notifier/internal/service"
	"github.com/Roma7-7-7/cek-notifier/internal/service/mocks"
	"github.com/Roma7-7-7/cek-notifier/pkg/clock"
)

const (
	updatePost     = `За командою диспетчерського центру НЕК "Укренерго" для підчерги 4.2 додатково застосовуватиметься відключення з 10:00 до 12:00`
	cancelledPost  = "Для підчерги 4.2 відключення скасовано"
	repeatedUpdate = "Для підчерги 4.2 додатково відключення з 01:00 до 05:00"
)

func TestUpdates_Monitor(t *testing.T) {
	now := time.Date(2025, time.December, 19, 9, 15, 0, 0, time.UTC)
	today := testutil.MustDate("19.12.2025")

	storedTable := func() schedule.DayTable {
		return testutil.NewDayTable().
			WithGroup("GPV4.2", "YNNNNYYYYYYYYYYYYYYYYYYY").
			Build()
	}
	updatedTable := testutil.NewDayTable().
		WithGroup("GPV4.2", "YNNNNYYYYYNNYYYYYYYYYYYY").
		Build()
	storedDocument := func() schedule.Document {
		return testutil.NewDocument(time.UTC).
			WithDay("19.12.2025", storedTable()).
			WithToday("19.12.2025").
			WithTouched(now.Add(-time.Hour)).
			Build()
	}

	at := func(hour, minute int) time.Time {
		return time.Date(2025, time.December, 19, hour, minute, 0, 0, time.UTC)
	}
	processed := func(w dal.Watermark) dal.Watermark {
		w.ProcessedAt = &now
		return w
	}

	type fields struct {
		store      func(*gomock.Controller) service.DocumentStore
		history    func(*gomock.Controller) service.HistoryStore
		watermarks func(*gomock.Controller) service.WatermarkStore
		provider   func(*gomock.Controller) service.PostsProvider
	}
	tests := []struct {
		name    string
		fields  fields
		want    bool
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "applies_new_updates",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(storedDocument(), true, nil)
					res.EXPECT().PutDocument(testutil.NewDocument(time.UTC).
						WithDay("19.12.2025", updatedTable).
						WithToday("19.12.2025").
						WithTouched(now).
						Build()).Return(nil)
					return res
				},
				history: func(ctrl *gomock.Controller) service.HistoryStore {
					res := mocks.NewMockHistoryStore(ctrl)
					res.EXPECT().PutHistory(today, updatedTable).Return(nil)
					return res
				},
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(watermark("cek_info/4100", at(8, 0)), nil)
					res.EXPECT().PutWatermark(processed(watermark("cek_info/4103", at(9, 0)))).Return(nil)
					return res
				},
				provider: posts(
					providers.Post{ID: "cek_info/4103", Text: updatePost, Date: at(9, 0)},
					providers.Post{ID: "cek_info/4102", Text: greetingPost, Date: at(8, 30)},
					providers.Post{ID: "cek_info/4100", Text: updatePost, Date: at(8, 0)},
				),
			},
			want:    true,
			wantErr: assert.NoError,
		},
		{
			name: "nothing_new",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(watermark("cek_info/4100", at(8, 0)), nil)
					return res
				},
				provider: posts(
					providers.Post{ID: "cek_info/4100", Text: updatePost, Date: at(8, 0)},
					providers.Post{ID: "cek_info/4099", Text: updatePost, Date: at(7, 0)},
				),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "non_update_posts_advance_watermark",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(dal.Watermark{}, nil)
					res.EXPECT().PutWatermark(processed(watermark("cek_info/4102", at(8, 30)))).Return(nil)
					return res
				},
				provider: posts(providers.Post{ID: "cek_info/4102", Text: greetingPost, Date: at(8, 30)}),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "undated_post_clears_watermark_date",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					id := "cek_info/4104"
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(watermark("cek_info/4100", at(8, 0)), nil)
					res.EXPECT().PutWatermark(processed(dal.Watermark{LastID: &id})).Return(nil)
					return res
				},
				provider: posts(providers.Post{ID: "cek_info/4104", Text: greetingPost}),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "undated_older_post_skipped",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					id := "cek_info/4104"
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(dal.Watermark{LastID: &id}, nil)
					return res
				},
				provider: posts(
					providers.Post{ID: "cek_info/4104", Text: greetingPost},
					providers.Post{ID: "cek_info/4103", Text: updatePost},
				),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "unparsable_update_skipped",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(dal.Watermark{}, nil)
					res.EXPECT().PutWatermark(processed(watermark("cek_info/4105", at(9, 0)))).Return(nil)
					return res
				},
				provider: posts(providers.Post{ID: "cek_info/4105", Text: cancelledPost, Date: at(9, 0)}),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "update_without_changes",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(storedDocument(), true, nil)
					return res
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(dal.Watermark{}, nil)
					res.EXPECT().PutWatermark(processed(watermark("cek_info/4106", at(9, 0)))).Return(nil)
					return res
				},
				provider: posts(providers.Post{ID: "cek_info/4106", Text: repeatedUpdate, Date: at(9, 0)}),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "missing_document_advances_watermark",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(schedule.Document{}, false, nil)
					return res
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(dal.Watermark{}, nil)
					res.EXPECT().PutWatermark(processed(watermark("cek_info/4103", at(9, 0)))).Return(nil)
					return res
				},
				provider: posts(providers.Post{ID: "cek_info/4103", Text: updatePost, Date: at(9, 0)}),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "today_missing_in_document",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(testutil.NewDocument(time.UTC).
						WithDay("20.12.2025", storedTable()).
						Build(), true, nil)
					return res
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(dal.Watermark{}, nil)
					res.EXPECT().PutWatermark(processed(watermark("cek_info/4103", at(9, 0)))).Return(nil)
					return res
				},
				provider: posts(providers.Post{ID: "cek_info/4103", Text: updatePost, Date: at(9, 0)}),
			},
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "fetch_error",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					return mocks.NewMockWatermarkStore(ctrl)
				},
				provider: func(ctrl *gomock.Controller) service.PostsProvider {
					res := mocks.NewMockPostsProvider(ctrl)
					res.EXPECT().Posts(gomock.Any(), 10).Return(nil, providers.ErrNoPosts)
					return res
				},
			},
			want:    false,
			wantErr: testutil.AssertErrorIsAndContains(providers.ErrNoPosts, "get posts"),
		},
		{
			name: "put_watermark_error",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
				watermarks: func(ctrl *gomock.Controller) service.WatermarkStore {
					res := mocks.NewMockWatermarkStore(ctrl)
					res.EXPECT().GetWatermark().Return(dal.Watermark{}, nil)
					res.EXPECT().PutWatermark(gomock.Any()).Return(errors.New("no space left on device"))
					return res
				},
				provider: posts(providers.Post{ID: "cek_info/4102", Text: greetingPost, Date: at(8, 30)}),
			},
			want: false,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "put watermark: no space left on device", i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := service.NewUpdates(
				service.UpdatesConfig{PostsLimit: 10, FetchTimeout: time.Second},
				tt.fields.store(ctrl),
				tt.fields.history(ctrl),
				tt.fields.watermarks(ctrl),
				tt.fields.provider(ctrl),
				parser.New(slog.New(slog.DiscardHandler)),
				clock.NewMock(now),
				observability.NewMetricsForTesting(),
				nil,
				slog.New(slog.DiscardHandler),
			)

			got, err := svc.Monitor(t.Context())
			if !tt.wantErr(t, err, "Monitor(_)") {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdates_Apply(t *testing.T) {
	now := time.Date(2025, time.December, 19, 9, 15, 0, 0, time.UTC)
	tomorrow := testutil.MustDate("20.12.2025")

	storedDocument := func() schedule.Document {
		return testutil.NewDocument(time.UTC).
			WithDay("19.12.2025", testutil.NewDayTable().
				WithGroup("GPV4.2", "YNNNNYYYYYYYYYYYYYYYYYYY").
				Build()).
			WithDay("20.12.2025", testutil.NewDayTable().
				WithGroup("GPV1.1", "YYYYYYYYYYYYYYYYYYYYYYYY").
				Build()).
			WithToday("19.12.2025").
			Build()
	}

	type fields struct {
		store   func(*gomock.Controller) service.DocumentStore
		history func(*gomock.Controller) service.HistoryStore
	}
	tests := []struct {
		name    string
		fields  fields
		text    string
		target  *schedule.Date
		want    bool
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "today_by_default",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(storedDocument(), true, nil)
					res.EXPECT().PutDocument(testutil.NewDocument(time.UTC).
						WithDay("19.12.2025", testutil.NewDayTable().
							WithGroup("GPV4.2", "YNNNNYYYYYNNYYYYYYYYYYYY").
							Build()).
						WithDay("20.12.2025", testutil.NewDayTable().
							WithGroup("GPV1.1", "YYYYYYYYYYYYYYYYYYYYYYYY").
							Build()).
						WithToday("19.12.2025").
						WithTouched(now).
						Build()).Return(nil)
					return res
				},
				history: func(ctrl *gomock.Controller) service.HistoryStore {
					res := mocks.NewMockHistoryStore(ctrl)
					res.EXPECT().PutHistory(testutil.MustDate("19.12.2025"), gomock.Any()).Return(nil)
					return res
				},
			},
			text:    updatePost,
			want:    true,
			wantErr: assert.NoError,
		},
		{
			name: "explicit_target_adds_group",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(storedDocument(), true, nil)
					res.EXPECT().PutDocument(testutil.NewDocument(time.UTC).
						WithDay("19.12.2025", testutil.NewDayTable().
							WithGroup("GPV4.2", "YNNNNYYYYYYYYYYYYYYYYYYY").
							Build()).
						WithDay("20.12.2025", testutil.NewDayTable().
							WithGroup("GPV1.1", "YYYYYYYYYYYYYYYYYYYYYYYY").
							WithGroup("GPV4.2", "YYYYYYYYYYNNYYYYYYYYYYYY").
							Build()).
						WithToday("19.12.2025").
						WithTouched(now).
						Build()).Return(nil)
					return res
				},
				history: func(ctrl *gomock.Controller) service.HistoryStore {
					res := mocks.NewMockHistoryStore(ctrl)
					res.EXPECT().PutHistory(tomorrow, gomock.Any()).Return(nil)
					return res
				},
			},
			text:    updatePost,
			target:  &tomorrow,
			want:    true,
			wantErr: assert.NoError,
		},
		{
			name: "no_changes",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(storedDocument(), true, nil)
					return res
				},
				history: noHistory,
			},
			text:    repeatedUpdate,
			want:    false,
			wantErr: assert.NoError,
		},
		{
			name: "not_update",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					return mocks.NewMockDocumentStore(ctrl)
				},
				history: noHistory,
			},
			text: greetingPost,
			want: false,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, parser.ErrNotUpdate, i...) &&
					assert.True(t, service.IsInputError(err), i...)
			},
		},
		{
			name: "document_not_found",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(schedule.Document{}, false, nil)
					return res
				},
				history: noHistory,
			},
			text: updatePost,
			want: false,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, service.ErrDocumentNotFound, i...) &&
					assert.False(t, service.IsInputError(err), i...)
			},
		},
		{
			name: "day_not_found",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(storedDocument(), true, nil)
					return res
				},
				history: noHistory,
			},
			text:   updatePost,
			target: func() *schedule.Date { d := testutil.MustDate("25.12.2025"); return &d }(),
			want:   false,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, schedule.ErrDayNotFound, i...) &&
					assert.True(t, service.IsInputError(err), i...)
			},
		},
		{
			name: "put_document_error",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.DocumentStore {
					res := mocks.NewMockDocumentStore(ctrl)
					res.EXPECT().GetDocument().Return(storedDocument(), true, nil)
					res.EXPECT().PutDocument(gomock.Any()).Return(errors.New("read-only file system"))
					return res
				},
				history: noHistory,
			},
			text: updatePost,
			want: false,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "put document: read-only file system", i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := service.NewUpdates(
				service.UpdatesConfig{},
				tt.fields.store(ctrl),
				tt.fields.history(ctrl),
				mocks.NewMockWatermarkStore(ctrl),
				mocks.NewMockPostsProvider(ctrl),
				parser.New(slog.New(slog.DiscardHandler)),
				clock.NewMock(now),
				observability.NewMetricsForTesting(),
				nil,
				slog.New(slog.DiscardHandler),
			)

			got, err := svc.Apply(t.Context(), tt.text, tt.target)
			if !tt.wantErr(t, err, "Apply(_, _, _)") {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
