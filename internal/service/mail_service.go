package service

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mindmate_backend/internal/config"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// MailService 发送纯文本邮件，魔法链接登录的唯一投递通道
type MailService struct {
	cfg config.SMTPConfig
}

func NewMailService(cfg config.SMTPConfig) *MailService {
	return &MailService{cfg: cfg}
}

// SendMagicLink 向指定邮箱发送登录链接
func (s *MailService) SendMagicLink(to, link string) error {
	body := fmt.Sprintf(
		"点击以下链接登录 MindMate（15 分钟内有效）：\r\n\r\n%s\r\n\r\n如果这不是你本人的操作，请忽略本邮件。",
		link,
	)
	return s.send(to, "MindMate 登录链接", body)
}

func (s *MailService) send(to, subject, body string) error {
	if s.cfg.Host == "" || s.cfg.From == "" {
		return fmt.Errorf("smtp not configured")
	}
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	fromName := s.cfg.FromName
	if fromName == "" {
		fromName = "MindMate"
	}
	fromHeader := fmt.Sprintf("%s <%s>", encodeRFC2047(fromName), s.cfg.From)

	headers := map[string]string{
		"From":         fromHeader,
		"To":           to,
		"Subject":      encodeRFC2047(subject),
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}
	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if s.cfg.TLS {
		// STARTTLS，带超时，避免挂死
		d := net.Dialer{Timeout: 5 * time.Second}
		conn, err := d.Dial("tcp", addr)
		if err != nil {
			return err
		}
		_ = conn.SetDeadline(time.Now().Add(15 * time.Second))
		host, _, _ := net.SplitHostPort(addr)
		c, err := smtp.NewClient(conn, host)
		if err != nil {
			_ = conn.Close()
			return err
		}
		defer c.Close()
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
				return err
			}
		}
		if s.cfg.Username != "" {
			if err := c.Auth(auth); err != nil {
				return err
			}
		}
		if err := c.Mail(s.cfg.From); err != nil {
			return err
		}
		if err := c.Rcpt(to); err != nil {
			return err
		}
		wc, err := c.Data()
		if err != nil {
			return err
		}
		if _, err := wc.Write([]byte(msg.String())); err != nil {
			_ = wc.Close()
			return err
		}
		return wc.Close()
	}

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}

// encodeRFC2047 对含非 ASCII 字符的邮件头做 B 编码
func encodeRFC2047(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}
