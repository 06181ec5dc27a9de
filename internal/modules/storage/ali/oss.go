package ali

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/modules/cache"
)

// Client stores artifacts in an OSS bucket and serves them through presigned
// URLs.
type Client struct {
	client     *oss.Client
	bucketName string
	directory  string
	urlExpires time.Duration
}

func NewClient(conf config.AliOss, urlExpires time.Duration) *Client {
	credential := credentials.NewStaticCredentialsProvider(conf.AccessKeyId, conf.AccessKeySecret, "")
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credential).
		WithEndpoint(conf.Endpoint).WithRegion(conf.Region)
	client := oss.NewClient(cfg)
	if client == nil {
		panic("create oss client failed")
	}
	return &Client{
		client:     client,
		bucketName: conf.Bucket,
		directory:  conf.Directory,
		urlExpires: urlExpires,
	}
}

func (o *Client) Save(name string, reader io.Reader) error {
	request := &oss.PutObjectRequest{
		Bucket:             oss.Ptr(o.bucketName),
		Key:                oss.Ptr(o.fullPath(name)),
		Body:               reader,
		ContentDisposition: oss.Ptr(fmt.Sprintf("attachment; filename=%q", name)),
	}
	_, err := o.client.PutObject(context.TODO(), request)
	return err
}

func (o *Client) Delete(name string) error {
	_, err := o.client.DeleteObject(context.TODO(), &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(o.bucketName),
		Key:    oss.Ptr(o.fullPath(name)),
	})
	if err == nil {
		_ = cache.URLCacheManager().Delete(name)
	}
	return err
}

func (o *Client) Exists(name string) bool {
	exist, err := o.client.IsObjectExist(context.TODO(), o.bucketName, o.fullPath(name))
	return err == nil && exist
}

func (o *Client) URL(name string) (string, error) {
	cached, err := cache.URLCacheManager().GetValue(name)
	if err == nil && cached != "" {
		return cached, nil
	}
	ret, err := o.client.Presign(context.TODO(),
		&oss.GetObjectRequest{Bucket: oss.Ptr(o.bucketName), Key: oss.Ptr(o.fullPath(name))},
		oss.PresignExpires(o.urlExpires))
	if err != nil {
		return "", err
	}
	// Cache for most of the signature lifetime so a served URL stays valid.
	_ = cache.URLCacheManager().SetWithExpiration(name, ret.URL, o.urlExpires/2)
	return ret.URL, nil
}

func (o *Client) Supplier() string {
	return "ali_oss"
}

func (o *Client) fullPath(name string) string {
	return o.directory + name
}
